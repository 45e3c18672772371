package dto

type CreateCommunityRequest struct {
	ID           string `json:"id" validate:"required"`
	VkUserID     string `json:"vk_user_id"`
	Name         string `json:"name" validate:"required"`
	Nickname     string `json:"nickname" validate:"required"`
	MembersCount string `json:"membersCount"`
	RaffleCount  string `json:"raffleCount"`
	AdminType    string `json:"adminType" validate:"required,is-admin-role"`
	AvatarURL    string `json:"avatarUrl"`
	Status       string `json:"status" validate:"required,is-community-status"`
	ButtonDesc   string `json:"buttonDesc"`
	StateText    string `json:"stateText"`
}

type UpdateCommunityRequest struct {
	VkUserID     *string `json:"vk_user_id"`
	Name         *string `json:"name"`
	Nickname     *string `json:"nickname"`
	MembersCount *string `json:"membersCount"`
	RaffleCount  *string `json:"raffleCount"`
	AdminType    *string `json:"adminType" validate:"omitempty,is-admin-role"`
	AvatarURL    *string `json:"avatarUrl"`
	Status       *string `json:"status" validate:"omitempty,is-community-status"`
	ButtonDesc   *string `json:"buttonDesc"`
	StateText    *string `json:"stateText"`
}

type CommunityResponse struct {
	ID           string `json:"id"`
	VkUserID     string `json:"vk_user_id"`
	Name         string `json:"name"`
	Nickname     string `json:"nickname"`
	MembersCount string `json:"membersCount"`
	RaffleCount  string `json:"raffleCount"`
	AdminType    string `json:"adminType"`
	AvatarURL    string `json:"avatarUrl"`
	Status       string `json:"status"`
	ButtonDesc   string `json:"buttonDesc"`
	StateText    string `json:"stateText"`
}

type CommunityListResponse struct {
	Communities []CommunityResponse `json:"communities"`
	Total       int                 `json:"total"`
}
