// Command authprobe is a manual integration probe against a running
// auth-service instance. It checks the health endpoint and then attempts
// a password-grant login, logging every response it gets. Exit code is
// non-zero when the login does not succeed.
package main

import (
	"flag"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

func main() {
	baseURL := flag.String("base-url", "http://127.0.0.1:8000", "auth-service base URL")
	username := flag.String("username", "admin", "login name")
	password := flag.String("password", "admin", "password")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	client := &http.Client{Timeout: 10 * time.Second}

	if err := checkHealth(client, logger, *baseURL); err != nil {
		logger.Error("Health check failed", zap.Error(err))
		os.Exit(1)
	}

	if err := attemptLogin(client, logger, *baseURL, *username, *password); err != nil {
		logger.Error("Authentication test failed", zap.Error(err))
		os.Exit(1)
	}
}

func checkHealth(client *http.Client, logger *zap.Logger, baseURL string) error {
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	logger.Info("Health check response",
		zap.Int("status", resp.StatusCode),
		zap.String("body", string(body)),
	)
	return nil
}

func attemptLogin(client *http.Client, logger *zap.Logger, baseURL, username, password string) error {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	form.Set("grant_type", "password")

	logger.Info("Attempting authentication...", zap.String("username", username))

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/v1/auth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	logger.Info("Auth response",
		zap.Int("status", resp.StatusCode),
		zap.Any("headers", resp.Header),
		zap.String("body", string(body)),
	)

	if resp.StatusCode != http.StatusOK {
		return &loginError{status: resp.StatusCode}
	}
	return nil
}

type loginError struct {
	status int
}

func (e *loginError) Error() string {
	return "login failed with status " + http.StatusText(e.status)
}
