package notifications

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	pkgerrors "github.com/luxerealty/luxerealty-backend/pkg/errors"
)

func TestSendDispatchesThroughProvider(t *testing.T) {
	sender := &fakeSender{}
	svc, err := NewService(ServiceParams{Sender: sender})
	require.NoError(t, err)

	result, err := svc.Send(context.Background(), SendInput{
		To:      " agent@example.com ",
		Subject: " Open house recap ",
		HTML:    "<p>Thanks for attending.</p>",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.ID)

	require.Len(t, sender.sent, 1)
	require.Equal(t, []string{"agent@example.com"}, sender.sent[0].To)
	require.Equal(t, "Open house recap", sender.sent[0].Subject)
}

func TestSendRequiresRecipient(t *testing.T) {
	svc, err := NewService(ServiceParams{Sender: &fakeSender{}})
	require.NoError(t, err)

	_, err = svc.Send(context.Background(), SendInput{Subject: "s", HTML: "<p>x</p>"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestSendSurfacesProviderErrors(t *testing.T) {
	providerErr := pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid api key")
	svc, err := NewService(ServiceParams{Sender: &fakeSender{err: providerErr}})
	require.NoError(t, err)

	_, err = svc.Send(context.Background(), SendInput{
		To:      "agent@example.com",
		Subject: "s",
		HTML:    "<p>x</p>",
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeUnauthorized, typed.Code())
}
