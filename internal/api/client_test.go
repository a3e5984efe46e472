package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pubquiz-admin/internal/models"
)

func TestClientDecodesSuccessResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/menus", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Menu{{ID: 1, Name: "Main Food Menu"}})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	menus, err := client.ListMenus()
	require.NoError(t, err)
	require.Len(t, menus, 1)
	assert.Equal(t, "Main Food Menu", menus[0].Name)
}

func TestClientExtractsDetailFromErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(models.NewAPIError("cannot delete menu: 2 categories reference it"))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	err := client.DeleteMenu(1)
	require.Error(t, err)

	var remote *models.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusConflict, remote.StatusCode)
	assert.Equal(t, "cannot delete menu: 2 categories reference it", remote.Message)
}

func TestClientFallsBackToGenericMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.ListRooms()
	require.Error(t, err)

	var remote *models.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusBadGateway, remote.StatusCode)
	assert.Equal(t, "request failed with status 502", remote.Message)
}

func TestClientWrapsTransportFailure(t *testing.T) {
	// Closed server makes every request fail at the transport level
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.ListMenus()
	require.Error(t, err)

	var remote *models.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Zero(t, remote.StatusCode)
	assert.NotNil(t, remote.Err)
	assert.False(t, models.IsNotFound(err))
}

func TestClientNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(models.NewAPIError("not found"))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.GetRoomMenuSetting("sample_room")
	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))
}

func TestClientSendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(models.Team{ID: 1, Username: "quizzers"})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	client.SetToken("token-123")
	team, err := client.UpdateTeamProfile(models.TeamProfile{DisplayName: "The Quizzers"})
	require.NoError(t, err)
	assert.Equal(t, "quizzers", team.Username)
}

func TestLoginStoresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			json.NewEncoder(w).Encode(models.LoginResponse{
				Token: "issued-token",
				Team:  models.Team{ID: 7, Username: "quizzers"},
			})
		default:
			assert.Equal(t, "Bearer issued-token", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(models.Team{ID: 7})
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	resp, err := client.Login("quizzers", "secret")
	require.NoError(t, err)
	assert.Equal(t, "issued-token", resp.Token)

	// Subsequent calls carry the issued token
	_, err = client.UpdateTeamProfile(models.TeamProfile{DisplayName: "x"})
	require.NoError(t, err)
}

func TestClientQueryParameters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "42", r.URL.Query().Get("menu_id"))
		json.NewEncoder(w).Encode([]models.Category{})
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.ListCategories(42)
	require.NoError(t, err)
}
