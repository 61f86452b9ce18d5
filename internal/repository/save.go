package repository

import (
	"encoding/json"
	"fmt"

	"clicker_backend/internal/model"
)

// EncodeSave сериализует запись целиком
func EncodeSave(data *model.PlayerData) ([]byte, error) {
	data.Version = model.SaveVersion
	return json.Marshal(data)
}

// DecodeSave разбирает сохранение. Битые данные - ErrMalformedSave
func DecodeSave(raw []byte) (*model.PlayerData, error) {
	var data model.PlayerData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedSave, err)
	}
	data.Normalize()
	return &data, nil
}
