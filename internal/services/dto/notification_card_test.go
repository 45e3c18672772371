package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationCardPayload_UnmarshalDispatchesOnType(t *testing.T) {
	t.Parallel()

	var payload NotificationCardPayload
	err := json.Unmarshal([]byte(`{
		"id": 38289,
		"type": "completed",
		"raffleId": 38289,
		"participantsCount": 150,
		"winners": ["593IF", "REOOJ"],
		"reasonEnd": "По времени",
		"new": true
	}`), &payload)
	require.NoError(t, err)

	require.NotNil(t, payload.Completed)
	assert.Nil(t, payload.Warning)
	assert.Nil(t, payload.Error)
	assert.Equal(t, "completed", payload.Kind())
	assert.Equal(t, []string{"593IF", "REOOJ"}, payload.Completed.Winners)
}

func TestNotificationCardPayload_UnknownTypeRejected(t *testing.T) {
	t.Parallel()

	var payload NotificationCardPayload
	err := json.Unmarshal([]byte(`{"type": "celebration"}`), &payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "celebration")
}

func TestNotificationCardPayload_MarshalEmitsActiveVariant(t *testing.T) {
	t.Parallel()

	payload := NotificationCardPayload{
		Warning: &WarningNotificationCard{
			Type:               "warning",
			WarningTitle:       "Внимание",
			WarningDescription: []string{"Описание"},
		},
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "warning",
		"warningTitle": "Внимание",
		"warningDescription": ["Описание"],
		"new": false
	}`, string(data))
}

func TestNotificationCardPayload_MarshalEmptyFails(t *testing.T) {
	t.Parallel()

	_, err := json.Marshal(NotificationCardPayload{})
	require.Error(t, err)
}

func TestCreateNotificationCardRequest_UnmarshalExtractsID(t *testing.T) {
	t.Parallel()

	var req CreateNotificationCardRequest
	err := json.Unmarshal([]byte(`{"id": 7, "type": "error", "errorTitle": "Ошибка", "errorDescription": "Текст"}`), &req)
	require.NoError(t, err)

	assert.Equal(t, 7, req.ID)
	require.NotNil(t, req.Payload.Error)
	assert.Equal(t, "Ошибка", req.Payload.Error.ErrorTitle)
}

func TestCommunityModal_UnmarshalDispatchesOnType(t *testing.T) {
	t.Parallel()

	var modal CommunityModal
	err := json.Unmarshal([]byte(`{
		"id": "m1",
		"type": "permission",
		"communityName": "Техноклуб",
		"subscribers": [{"name": "Аня", "avatar": "a.jpg"}]
	}`), &modal)
	require.NoError(t, err)

	require.NotNil(t, modal.Permission)
	assert.Equal(t, "m1", modal.ModalID())
	assert.Equal(t, "permission", modal.Kind())
	require.Len(t, modal.Permission.Subscribers, 1)
	assert.Equal(t, "Аня", modal.Permission.Subscribers[0].Name)
}

func TestCommunityModal_UnknownTypeRejected(t *testing.T) {
	t.Parallel()

	var modal CommunityModal
	err := json.Unmarshal([]byte(`{"id": "m1", "type": "tooltip"}`), &modal)
	require.Error(t, err)
}
