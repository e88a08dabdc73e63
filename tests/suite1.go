package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/stretchr/testify/suite"
)

const baseURL = "http://localhost:3000"

// APISuite drives a compiled server binary over its JSON API. It only runs
// when -server-config points at a config file, the package is skipped in a
// plain `go test ./...` run.
type APISuite struct {
	suite.Suite
	process *Process
	client  *http.Client
}

var serverConfigPath string

func init() {
	flag.StringVar(&serverConfigPath, "server-config", "", "path to server configs")
}

func (s *APISuite) SetupSuite() {
	if serverConfigPath == "" {
		s.T().Skip("-server-config not set, skipping end to end tests")
	}
	fmt.Println("setupSuite")
	p := NewProcess(context.Background(), "../bin/server",
		"-config", serverConfigPath)
	s.process = p
	s.client = &http.Client{Timeout: time.Second * 5}
	err := p.Start(context.Background())
	if err != nil {
		s.T().Errorf("cant start process: %v", err)
	}

	if err := waitForStartup(time.Second * 5); err != nil {
		s.T().Fatalf("unable to start app: %v", err)
	}
}

func waitForStartup(duration time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	ticker := time.NewTicker(time.Second / 2)
	for {
		select {
		case <-ticker.C:
			r, _ := http.Get(baseURL + "/")
			if r != nil && r.StatusCode == http.StatusOK {
				return nil
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *APISuite) TearDownSuite() {
	if s.process == nil {
		return
	}
	fmt.Println("teardown APISuite")
	exitCode, err := s.process.Stop()
	if err != nil {
		s.T().Logf("cant stop process: %v", err)
	}
	s.T().Logf("process finished with code %d", exitCode)
}

func (s *APISuite) request(method, path, token string, body any) (*http.Response, map[string]json.RawMessage) {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, baseURL+path, &buf)
	s.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	payload := make(map[string]json.RawMessage)
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	return resp, payload
}

func (s *APISuite) TestHandlers() {
	resp, _ := s.request(http.MethodGet, "/", "", nil)
	s.Equal(http.StatusOK, resp.StatusCode, "dashboard must be public")

	resp, _ = s.request(http.MethodGet, "/teams", "", nil)
	s.Equal(http.StatusUnauthorized, resp.StatusCode, "team list must require a token")

	email := fmt.Sprintf("coach%d@academia.co", time.Now().UnixNano())
	resp, payload := s.request(http.MethodPost, "/auth/register", "", map[string]string{
		"email":    email,
		"password": "secreto123",
		"name":     "Coach de Prueba",
		"role":     "coach",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	var token string
	s.Require().NoError(json.Unmarshal(payload["token"], &token))

	resp, _ = s.request(http.MethodPost, "/auth/verify", "", map[string]string{
		"token": token,
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	resp, _ = s.request(http.MethodGet, "/teams", token, nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	resp, payload = s.request(http.MethodPost, "/teams", token, map[string]any{
		"name":     fmt.Sprintf("Equipo %d", time.Now().UnixNano()),
		"category": "Sub-12",
	})
	s.Require().Equal(http.StatusCreated, resp.StatusCode)
	var team struct {
		ID int `json:"id"`
	}
	s.Require().NoError(json.Unmarshal(payload["team"], &team))

	resp, _ = s.request(http.MethodDelete, fmt.Sprintf("/teams/%d", team.ID), token, nil)
	s.Equal(http.StatusForbidden, resp.StatusCode, "coach must not delete teams")

	resp, _ = s.request(http.MethodPost, "/admin/seed-data", token, nil)
	s.Equal(http.StatusForbidden, resp.StatusCode, "admin area is admin only")
}
