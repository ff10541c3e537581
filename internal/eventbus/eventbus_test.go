package eventbus_test

import (
	"context"
	"errors"
	"filplus/internal/eventbus"
	"filplus/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

type created struct{ ID string }

func (created) EventType() string { return "Created" }

type renamed struct{ ID, Name string }

func (renamed) EventType() string { return "Renamed" }

func TestBus_SubscribeRejectsDuplicates(t *testing.T) {
	bus := eventbus.New()
	noop := func(context.Context, created, eventbus.Envelope) error { return nil }

	require.NoError(t, bus.Subscribe(eventbus.NewHandler("projector", noop)))
	require.NoError(t, bus.Subscribe(eventbus.NewHandler("linker", noop)))

	err := bus.Subscribe(eventbus.NewHandler("projector", noop))
	require.ErrorIs(t, err, serrors.ErrConfiguration)
	require.Equal(t, []string{"projector", "linker"}, bus.Handlers("Created"))

	err = bus.Subscribe(eventbus.NewHandler("", noop))
	require.ErrorIs(t, err, serrors.ErrConfiguration)
}

func TestBus_Validate(t *testing.T) {
	bus := eventbus.New()
	require.NoError(t, bus.Subscribe(eventbus.NewHandler("projector",
		func(context.Context, created, eventbus.Envelope) error { return nil })))

	require.NoError(t, bus.Validate("Created"))

	err := bus.Validate("Created", "Renamed", "Deleted")
	require.ErrorIs(t, err, serrors.ErrConfiguration)
	require.Contains(t, err.Error(), "Deleted, Renamed")
}

func TestBus_PublishDeliversInOrder(t *testing.T) {
	bus := eventbus.New()

	var calls []string
	var envelopes []eventbus.Envelope
	require.NoError(t, bus.Subscribe(eventbus.NewHandler("first",
		func(_ context.Context, e created, env eventbus.Envelope) error {
			calls = append(calls, "first:"+e.ID)
			envelopes = append(envelopes, env)

			return nil
		})))
	require.NoError(t, bus.Subscribe(eventbus.NewHandler("second",
		func(_ context.Context, e created, _ eventbus.Envelope) error {
			calls = append(calls, "second:"+e.ID)

			return nil
		})))
	require.NoError(t, bus.Subscribe(eventbus.NewHandler("renamer",
		func(_ context.Context, e renamed, _ eventbus.Envelope) error {
			calls = append(calls, "renamer:"+e.Name)

			return nil
		})))

	err := bus.Publish(context.Background(), "CreateApplication",
		created{ID: "A1"}, renamed{ID: "A1", Name: "X"}, created{ID: "A2"})
	require.NoError(t, err)
	require.Equal(t, []string{"first:A1", "second:A1", "renamer:X", "first:A2", "second:A2"}, calls)

	require.Len(t, envelopes, 2)
	require.Equal(t, "CreateApplication", envelopes[0].CausedBy)
	require.Less(t, envelopes[0].Sequence, envelopes[1].Sequence)
	require.False(t, envelopes[0].OccurredAt.IsZero())
}

func TestBus_PublishAttemptsEveryHandler(t *testing.T) {
	bus := eventbus.New()
	boom := errors.New("boom")

	secondCalled := false
	require.NoError(t, bus.Subscribe(eventbus.NewHandler("failing",
		func(context.Context, created, eventbus.Envelope) error { return boom })))
	require.NoError(t, bus.Subscribe(eventbus.NewHandler("panicking",
		func(context.Context, created, eventbus.Envelope) error { panic("oops") })))
	require.NoError(t, bus.Subscribe(eventbus.NewHandler("healthy",
		func(context.Context, created, eventbus.Envelope) error {
			secondCalled = true

			return nil
		})))

	err := bus.Publish(context.Background(), "CreateApplication", created{ID: "A1"})
	require.Error(t, err)
	require.True(t, secondCalled)
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, err, serrors.ErrInternal)

	var deliveryErr *eventbus.DeliveryError
	require.ErrorAs(t, err, &deliveryErr)
	require.Equal(t, "failing", deliveryErr.Handler)
	require.Equal(t, "Created", deliveryErr.EventType)
}

func TestBus_PublishWithoutHandlersIsNotAnError(t *testing.T) {
	bus := eventbus.New()
	require.NoError(t, bus.Publish(context.Background(), "EditApplication", renamed{ID: "A1"}))
}
