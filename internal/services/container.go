package services

// ServiceContainer содержит все сервисы приложения
type ServiceContainer struct {
	RaffleService           RaffleService
	CommunityService        CommunityService
	NotificationService     NotificationService
	NotificationCardService NotificationCardService
	CommunityModalService   CommunityModalService
	CardService             CardService
	UploadService           UploadService
}
