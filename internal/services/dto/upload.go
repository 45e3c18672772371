package dto

// UploadResponse - результат загрузки фотографии: относительный URL
// под каталогом статики
type UploadResponse struct {
	URL string `json:"url"`
}
