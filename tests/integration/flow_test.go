//go:build integration
// +build integration

package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	baseURL = "http://localhost:8080/api/v1"
)

func TestComplaintLifecycleFlow(t *testing.T) {
	// This test assumes the API server is running on localhost:8080
	// against a seeded database (docker-compose up first).

	env := SetupTestEnv(t)
	defer env.Teardown()

	client := &http.Client{}
	var citizenToken, superAdminToken, chennaiAdminToken string
	var complaintID string

	// 1. Register citizen
	t.Run("Register", func(t *testing.T) {
		payload := map[string]string{
			"username":  "ravi",
			"email":     "ravi@example.com",
			"password":  "password123",
			"full_name": "Ravi Kumar",
			"mobile":    "9876543210",
		}
		body, _ := json.Marshal(payload)
		resp, err := client.Post(baseURL+"/auth/register", "application/json", bytes.NewBuffer(body))
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var result map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&result)
		citizenToken = result["access_token"].(string)
	})

	// 2. Admin logins (seeded accounts)
	t.Run("Admin Logins", func(t *testing.T) {
		superAdminToken = adminLogin(t, client, "admin", "admin123")
		chennaiAdminToken = adminLogin(t, client, "admin_chn", "admin123")
	})

	// 3. File a ROAD complaint near Chennai
	t.Run("Create Complaint", func(t *testing.T) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		w.WriteField("title", "Pothole on Anna Salai")
		w.WriteField("description", "Deep pothole near the Gemini flyover signal")
		w.WriteField("category", "ROAD")
		w.WriteField("latitude", "13.0604")
		w.WriteField("longitude", "80.2496")
		w.Close()

		req, _ := http.NewRequest("POST", baseURL+"/complaints", &buf)
		req.Header.Set("Authorization", "Bearer "+citizenToken)
		req.Header.Set("Content-Type", w.FormDataContentType())

		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var result map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&result)
		complaintID = result["id"].(string)
		assert.Equal(t, "PENDING", result["status"])
		assert.Equal(t, "Roads", result["department_name"])
		assert.Equal(t, "Chennai", result["city_name"])
	})

	// 4. Chennai admin sees the complaint with redacted contact
	t.Run("Scoped Admin List Is Redacted", func(t *testing.T) {
		req, _ := http.NewRequest("GET", baseURL+"/admin/complaints", nil)
		req.Header.Set("Authorization", "Bearer "+chennaiAdminToken)

		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var complaints []map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&complaints)
		require.NotEmpty(t, complaints)
		assert.Equal(t, "******", complaints[0]["owner_mobile"])
		assert.Equal(t, "******", complaints[0]["owner_email"])
	})

	// 5. Super admin sees the full complainant record
	t.Run("Super Admin Complainant Details", func(t *testing.T) {
		req, _ := http.NewRequest("GET", fmt.Sprintf("%s/admin/complaints/%s/complainant", baseURL, complaintID), nil)
		req.Header.Set("Authorization", "Bearer "+superAdminToken)

		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var details map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&details)
		assert.Equal(t, "9876543210", details["mobile"])
	})

	t.Run("Scoped Admin Denied Complainant Details", func(t *testing.T) {
		req, _ := http.NewRequest("GET", fmt.Sprintf("%s/admin/complaints/%s/complainant", baseURL, complaintID), nil)
		req.Header.Set("Authorization", "Bearer "+chennaiAdminToken)

		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	// 6. Status update appends history
	t.Run("Update Status", func(t *testing.T) {
		payload := map[string]string{
			"status":  "IN_PROGRESS",
			"remarks": "Road crew dispatched",
		}
		body, _ := json.Marshal(payload)
		req, _ := http.NewRequest("PUT", fmt.Sprintf("%s/admin/complaints/%s/status", baseURL, complaintID), bytes.NewBuffer(body))
		req.Header.Set("Authorization", "Bearer "+chennaiAdminToken)
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "IN_PROGRESS", result["status"])
	})

	t.Run("History Shows Transition", func(t *testing.T) {
		req, _ := http.NewRequest("GET", fmt.Sprintf("%s/admin/complaints/%s/history", baseURL, complaintID), nil)
		req.Header.Set("Authorization", "Bearer "+chennaiAdminToken)

		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var history []map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&history)
		require.Len(t, history, 1)
		assert.Equal(t, "IN_PROGRESS", history[0]["status"])
		assert.Equal(t, "Road crew dispatched", history[0]["remarks"])
	})

	// 7. Empty remarks are rejected
	t.Run("Update Without Remarks Rejected", func(t *testing.T) {
		payload := map[string]string{
			"status":  "COMPLETED",
			"remarks": "  ",
		}
		body, _ := json.Marshal(payload)
		req, _ := http.NewRequest("PUT", fmt.Sprintf("%s/admin/complaints/%s/status", baseURL, complaintID), bytes.NewBuffer(body))
		req.Header.Set("Authorization", "Bearer "+chennaiAdminToken)
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	// 8. Owner deletes within the window
	t.Run("Delete Within Window", func(t *testing.T) {
		req, _ := http.NewRequest("DELETE", fmt.Sprintf("%s/complaints/%s", baseURL, complaintID), nil)
		req.Header.Set("Authorization", "Bearer "+citizenToken)

		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("History Gone After Delete", func(t *testing.T) {
		var count int
		err := env.DB.QueryRow("SELECT COUNT(*) FROM status_history WHERE complaint_id = $1", complaintID).Scan(&count)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func adminLogin(t *testing.T, client *http.Client, username, password string) string {
	payload := map[string]string{
		"username": username,
		"password": password,
	}
	body, _ := json.Marshal(payload)
	resp, err := client.Post(baseURL+"/auth/admin/login", "application/json", bytes.NewBuffer(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return result["access_token"].(string)
}
