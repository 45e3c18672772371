package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	RaffleHandler           *RaffleHandler
	CommunityHandler        *CommunityHandler
	NotificationHandler     *NotificationHandler
	NotificationCardHandler *NotificationCardHandler
	CommunityModalHandler   *CommunityModalHandler
	CardHandler             *CardHandler
	UploadHandler           *UploadHandler
}
