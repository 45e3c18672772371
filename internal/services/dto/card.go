package dto

// Read-only проекции для UI-карточек. Имена полей - camelCase,
// как их ожидает фронт мини-аппа.

// RaffleCard - карточка розыгрыша со сведениями о сообществе
type RaffleCard struct {
	RaffleID          string `json:"raffleId"`
	Name              string `json:"name"` // название сообщества
	TextRaffleState   string `json:"textRaffleState"`
	WinnersCount      int    `json:"winnersCount"`
	Mode              string `json:"mode"` // both | time | members
	MemberCount       string `json:"memberCount,omitempty"`
	TimeLeft          string `json:"timeLeft,omitempty"`
	Progress          int    `json:"progress"`
	LastModified      string `json:"lastModified"`
	ModifiedBy        string `json:"modifiedBy"`
	StatusCommunity   string `json:"statusCommunity"` // error | connected | notConfig
	StatusNestedCard  string `json:"statusNestedCard"`
	StatusNestedText  string `json:"statusNestedText"`
	Nickname          string `json:"nickname"`
	MembersCountNested string `json:"membersCountNested"`
	AdminType         string `json:"adminType"`
}

type RaffleCardResponse struct {
	Raffle RaffleCard `json:"raffle"`
}

type RaffleCardListResponse struct {
	Raffles []RaffleCard `json:"raffles"`
}

// RaffleCarouselCard - компактная карточка для карусели
type RaffleCarouselCard struct {
	RaffleID  string `json:"raffleId"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	StateText string `json:"stateText"`
	Members   string `json:"members"`
	EndDate   string `json:"endDate"`
	UpdatedAt string `json:"updatedAt"`
}

type RaffleCarouselCardResponse struct {
	Raffle RaffleCarouselCard `json:"raffle"`
}

type RaffleCarouselCardListResponse struct {
	Raffles []RaffleCarouselCard `json:"raffles"`
}

// NestedCommunityCard - вложенная карточка сообщества, адресуется по никнейму
type NestedCommunityCard struct {
	Status       string `json:"status"`
	StatusText   string `json:"statusText"`
	Name         string `json:"name"`
	Nickname     string `json:"nickname"`
	AdminType    string `json:"adminType"`
	MembersCount string `json:"membersCount"`
}

type NestedCommunityCardResponse struct {
	Card NestedCommunityCard `json:"card"`
}

type NestedCommunityCardListResponse struct {
	Cards []NestedCommunityCard `json:"cards"`
}
