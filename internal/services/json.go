package services

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// toJSONList сериализует список строк в JSONB-колонку.
// nil превращается в пустой список, чтобы в БД не было NULL.
func toJSONList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		// []string маршалится всегда
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(data)
}

// fromJSONList разбирает JSONB-колонку обратно в список строк
func fromJSONList(data datatypes.JSON) []string {
	if len(data) == 0 {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return []string{}
	}
	return values
}
