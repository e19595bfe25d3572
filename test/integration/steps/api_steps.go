package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/cucumber/godog"

	"github.com/finance-academy/backend/internal/integration/persistence/model"
)

var coursePlaceholder = regexp.MustCompile(`\{\{course:([a-z0-9-]+)\}\}`)

func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I send (\d+) "([^"]*)" requests to "([^"]*)" with body:$`, iSendRequestsToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	tc := GetTestContext(ctx)
	path, err := tc.replacePlaceholders(endpoint)
	if err != nil {
		return err
	}
	return tc.send(method, path, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	path, err := tc.replacePlaceholders(endpoint)
	if err != nil {
		return err
	}
	content, err := tc.replacePlaceholders(body.Content)
	if err != nil {
		return err
	}
	return tc.send(method, path, []byte(content))
}

func iSendRequestsToWithBody(ctx context.Context, times int, method, endpoint string, body *godog.DocString) error {
	for i := 0; i < times; i++ {
		if err := iSendARequestToWithBody(ctx, method, endpoint, body); err != nil {
			return err
		}
	}
	return nil
}

func iSetHeaderTo(ctx context.Context, header, value string) error {
	GetTestContext(ctx).requestHeaders[header] = value
	return nil
}

func (tc *TestContext) replacePlaceholders(content string) (string, error) {
	content = strings.ReplaceAll(content, "{{access_token}}", tc.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", tc.refreshToken)
	content = strings.ReplaceAll(content, "{{simulation_id}}", tc.simulationID)
	content = strings.ReplaceAll(content, "{{user_id}}", tc.currentUserID.String())

	var lookupErr error
	content = coursePlaceholder.ReplaceAllStringFunc(content, func(match string) string {
		slug := coursePlaceholder.FindStringSubmatch(match)[1]
		var course model.CourseModel
		if err := tc.db.DbConn.Where("slug = ?", slug).First(&course).Error; err != nil {
			lookupErr = fmt.Errorf("course %s not seeded: %w", slug, err)
			return match
		}
		return course.ID.String()
	})

	return content, lookupErr
}

func (tc *TestContext) send(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, tc.server.URL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	tc.status = resp.StatusCode
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var captured struct {
		SimulationID string `json:"simulation_id"`
	}
	if json.Unmarshal(tc.responseBody, &captured) == nil && captured.SimulationID != "" {
		tc.simulationID = captured.SimulationID
	}
	return nil
}
