//go:build integration
// +build integration

package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuperAdminOversightFlow(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Teardown()

	client := &http.Client{}
	superAdminToken := adminLogin(t, client, "admin", "admin123")
	chennaiAdminToken := adminLogin(t, client, "admin_chn", "admin123")

	var roadsAdminID string

	t.Run("Create Department Admin", func(t *testing.T) {
		// Resolve the Roads department; it exists once any ROAD
		// complaint has been filed, so create it directly here.
		var deptID string
		err := env.DB.QueryRow(
			"INSERT INTO departments (id, name) VALUES (gen_random_uuid(), 'Roads') ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id",
		).Scan(&deptID)
		require.NoError(t, err)

		payload := map[string]interface{}{
			"username":      "admin_roads",
			"password":      "roads-secret-1",
			"department_id": deptID,
		}
		body, _ := json.Marshal(payload)
		req, _ := http.NewRequest("POST", baseURL+"/super-admin/admins", bytes.NewBuffer(body))
		req.Header.Set("Authorization", "Bearer "+superAdminToken)
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var created map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&created)
		roadsAdminID = created["id"].(string)
	})

	t.Run("Duplicate Username Conflicts", func(t *testing.T) {
		payload := map[string]interface{}{
			"username": "admin_roads",
			"password": "another-secret",
		}
		body, _ := json.Marshal(payload)
		req, _ := http.NewRequest("POST", baseURL+"/super-admin/admins", bytes.NewBuffer(body))
		req.Header.Set("Authorization", "Bearer "+superAdminToken)
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("Scoped Admin Cannot Manage Admins", func(t *testing.T) {
		req, _ := http.NewRequest("GET", baseURL+"/super-admin/admins", nil)
		req.Header.Set("Authorization", "Bearer "+chennaiAdminToken)

		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Send Remark", func(t *testing.T) {
		payload := map[string]string{
			"message": "Please clear the pending Roads backlog this week",
		}
		body, _ := json.Marshal(payload)
		req, _ := http.NewRequest("POST", fmt.Sprintf("%s/super-admin/admins/%s/remark", baseURL, roadsAdminID), bytes.NewBuffer(body))
		req.Header.Set("Authorization", "Bearer "+superAdminToken)
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("Target Admin Reads Notification", func(t *testing.T) {
		roadsToken := adminLogin(t, client, "admin_roads", "roads-secret-1")

		req, _ := http.NewRequest("GET", baseURL+"/admin/notifications", nil)
		req.Header.Set("Authorization", "Bearer "+roadsToken)

		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var notifications []map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&notifications)
		require.NotEmpty(t, notifications)
		assert.Equal(t, "REMARK", notifications[0]["type"])
		assert.False(t, notifications[0]["is_read"].(bool))

		notifID := notifications[0]["id"].(string)
		markReq, _ := http.NewRequest("PATCH", fmt.Sprintf("%s/admin/notifications/%s/read", baseURL, notifID), nil)
		markReq.Header.Set("Authorization", "Bearer "+roadsToken)

		markResp, err := client.Do(markReq)
		require.NoError(t, err)
		defer markResp.Body.Close()
		assert.Equal(t, http.StatusOK, markResp.StatusCode)

		countReq, _ := http.NewRequest("GET", baseURL+"/admin/notifications/unread-count", nil)
		countReq.Header.Set("Authorization", "Bearer "+roadsToken)

		countResp, err := client.Do(countReq)
		require.NoError(t, err)
		defer countResp.Body.Close()

		var count map[string]interface{}
		json.NewDecoder(countResp.Body).Decode(&count)
		assert.Zero(t, count["unread_count"].(float64))
	})

	t.Run("Work Statuses Cover Every Admin", func(t *testing.T) {
		req, _ := http.NewRequest("GET", baseURL+"/super-admin/admins/status", nil)
		req.Header.Set("Authorization", "Bearer "+superAdminToken)

		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var statuses []map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&statuses)

		usernames := make(map[string]bool)
		for _, s := range statuses {
			usernames[s["username"].(string)] = true
		}
		assert.True(t, usernames["admin"])
		assert.True(t, usernames["admin_chn"])
		assert.True(t, usernames["admin_roads"])
	})

	t.Run("Delete Admin", func(t *testing.T) {
		req, _ := http.NewRequest("DELETE", fmt.Sprintf("%s/super-admin/admins/%s", baseURL, roadsAdminID), nil)
		req.Header.Set("Authorization", "Bearer "+superAdminToken)

		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
