package application

import (
	"filplus/internal/commandbus"
	"filplus/internal/eventbus"
	"fmt"
)

// Register binds every command handler and projector and validates that no
// command or event type is left without a handler. Any error it returns
// carries serrors.ErrConfiguration and must stop the process.
func Register(commands *commandbus.Bus, events *eventbus.Bus, h *Handlers, p *Projections) error {
	for _, handler := range []commandbus.Handler{
		commandbus.NewHandler(h.EditApplication),
		commandbus.NewHandler(h.FetchAllocator),
		commandbus.NewHandler(h.CreateApplication),
		commandbus.NewHandler(h.TransitionApplication),
		commandbus.NewHandler(h.LinkPullRequest),
		commandbus.NewHandler(h.RequestRefresh),
		commandbus.NewHandler(h.SyncIssues),
	} {
		if err := commands.Register(handler); err != nil {
			return fmt.Errorf("could not register command handler: %w", err)
		}
	}

	// order matters: the details projection is written before the issue is linked
	for _, handler := range []eventbus.Handler{
		eventbus.NewHandler("application-details", p.ApplicationCreated),
		eventbus.NewHandler("issue-details", p.LinkIssue),
		eventbus.NewHandler("application-details", p.ApplicationEdited),
		eventbus.NewHandler("issue-details", p.IssueEdited),
		eventbus.NewHandler("application-details", p.ApplicationStatusChanged),
		eventbus.NewHandler("application-details", p.PullRequestLinked),
	} {
		if err := events.Subscribe(handler); err != nil {
			return fmt.Errorf("could not subscribe event handler: %w", err)
		}
	}

	if err := commands.Validate(CommandTypes()...); err != nil {
		return fmt.Errorf("invalid command bus: %w", err)
	}
	if err := events.Validate(EventTypes()...); err != nil {
		return fmt.Errorf("invalid event bus: %w", err)
	}

	return nil
}
