package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/cucumber/godog"

	"github.com/finance-academy/backend/test/integration/mock"
)

func registerStorageSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, theDbShouldContainObjectsInWithTheValues)
	ctx.Step(`^redis should hold (\d+) refresh sessions?$`, redisShouldHoldRefreshSessions)
	ctx.Step(`^the email provider should have received (\d+) emails?$`, theEmailProviderShouldHaveReceivedEmails)
	ctx.Step(`^the email (\d+) should be addressed to "([^"]*)"$`, theEmailShouldBeAddressedTo)
	ctx.Step(`^the email (\d+) subject should be "([^"]*)"$`, theEmailSubjectShouldBe)
}

func theDbShouldContainObjectsInTheTable(ctx context.Context, quantity int, table string) error {
	count, err := GetTestContext(ctx).db.Count(table, nil)
	if err != nil {
		return err
	}
	if count != int64(quantity) {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func theDbShouldContainObjectsInWithTheValues(ctx context.Context, quantity int, table string, content *godog.DocString) error {
	tc := GetTestContext(ctx)

	raw, err := tc.replacePlaceholders(content.Content)
	if err != nil {
		return err
	}
	var criteria map[string]any
	if err := json.Unmarshal([]byte(raw), &criteria); err != nil {
		return err
	}

	count, err := tc.db.Count(table, criteria)
	if err != nil {
		return err
	}
	if count != int64(quantity) {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func redisShouldHoldRefreshSessions(ctx context.Context, quantity int) error {
	count, err := mock.CountKeys(ctx, GetTestContext(ctx).redis, "session:refresh:*")
	if err != nil {
		return err
	}
	if count != quantity {
		return fmt.Errorf("expected %d refresh sessions in redis, got %d", quantity, count)
	}
	return nil
}

func theEmailProviderShouldHaveReceivedEmails(ctx context.Context, quantity int) error {
	received := len(GetTestContext(ctx).emailAPI.Sent())
	if received != quantity {
		return fmt.Errorf("expected %d emails sent to the provider, got %d", quantity, received)
	}
	return nil
}

func sentEmail(ctx context.Context, index int) (mock.SentEmail, error) {
	sent := GetTestContext(ctx).emailAPI.Sent()
	if index < 1 || index > len(sent) {
		return mock.SentEmail{}, fmt.Errorf("email %d was not sent", index)
	}
	return sent[index-1], nil
}

func theEmailShouldBeAddressedTo(ctx context.Context, index int, address string) error {
	email, err := sentEmail(ctx, index)
	if err != nil {
		return err
	}
	addressed := slices.ContainsFunc(email.To, func(to string) bool {
		return strings.Contains(to, address)
	})
	if !addressed {
		return fmt.Errorf("email %d sent to %v, expected %s", index, email.To, address)
	}
	return nil
}

func theEmailSubjectShouldBe(ctx context.Context, index int, subject string) error {
	email, err := sentEmail(ctx, index)
	if err != nil {
		return err
	}
	if email.Subject != subject {
		return fmt.Errorf("email %d subject is %q, expected %q", index, email.Subject, subject)
	}
	return nil
}
