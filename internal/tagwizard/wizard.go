// Package tagwizard implements the multi-step workflow that adds tags
// to or removes tags from a transaction.
package tagwizard

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/themuzzleflare/provenance/internal/models"
	"github.com/themuzzleflare/provenance/internal/upclient"
)

// Step is the current position in the workflow.
type Step uint8

const (
	StepSelectingTransaction Step = iota
	StepSelectingTags
	StepConfirming
	StepSubmitting
	StepSucceeded
	StepFailed
)

func (s Step) String() string {
	switch s {
	case StepSelectingTransaction:
		return "selecting-transaction"
	case StepSelectingTags:
		return "selecting-tags"
	case StepConfirming:
		return "confirming"
	case StepSubmitting:
		return "submitting"
	case StepSucceeded:
		return "succeeded"
	case StepFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Mode selects whether the workflow adds or removes tags.
type Mode uint8

const (
	ModeAdd Mode = iota
	ModeRemove
)

var (
	// ErrTagLimit is returned when a selection would exceed the
	// six-tag ceiling. The attempt is rejected, never truncated.
	ErrTagLimit = fmt.Errorf("a transaction can carry at most %d tags", models.MaxTagsPerTransaction)

	// ErrTagTooLong is returned for labels over the length limit.
	ErrTagTooLong = fmt.Errorf("a tag label can be at most %d characters", models.MaxTagLength)

	// ErrTagEmpty is returned for blank labels.
	ErrTagEmpty = errors.New("a tag label must not be empty")

	// ErrNoSelection is returned when confirming an empty selection.
	ErrNoSelection = errors.New("at least one tag must be selected")

	// ErrWrongStep is returned when an operation is invoked outside
	// the step it belongs to.
	ErrWrongStep = errors.New("this action is not available at the current step")
)

// Patcher issues the tag relationship mutation. *upclient.Client
// satisfies it.
type Patcher interface {
	AddTags(ctx context.Context, transactionID string, tagIDs []string) error
	RemoveTags(ctx context.Context, transactionID string, tagIDs []string) error
}

// Mutation is the exact change presented for confirmation and then
// submitted.
type Mutation struct {
	TransactionID string
	TagIDs        []string
	Mode          Mode
}

// Wizard walks a user through selecting a transaction, picking tags
// and confirming the mutation. No mutation is issued without the
// confirmation step.
type Wizard struct {
	patcher Patcher
	mode    Mode
	log     zerolog.Logger

	step        Step
	transaction models.Transaction
	selection   []string
	err         error
}

// New returns a Wizard at the transaction selection step.
func New(patcher Patcher, mode Mode) *Wizard {
	return &Wizard{
		patcher: patcher,
		mode:    mode,
		log:     log.With().Str("component", "tagwizard").Logger(),
		step:    StepSelectingTransaction,
	}
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	return w.step
}

// Err returns the failure of the last submission, if any.
func (w *Wizard) Err() error {
	return w.err
}

// Transaction returns the selected transaction.
func (w *Wizard) Transaction() models.Transaction {
	return w.transaction
}

// Selection returns the selected tag ids in selection order.
func (w *Wizard) Selection() []string {
	selection := make([]string, len(w.selection))
	copy(selection, w.selection)
	return selection
}

// SelectTransaction picks the transaction to mutate and advances to
// tag selection.
func (w *Wizard) SelectTransaction(transaction models.Transaction) error {
	if w.step != StepSelectingTransaction {
		return ErrWrongStep
	}

	w.transaction = transaction
	w.step = StepSelectingTags
	return nil
}

// SelectTag adds a tag to the selection. Labels are validated and the
// selection is capped at the six-tag ceiling: a seventh selection is
// rejected and the selection is left unchanged. Selecting an already
// selected tag is a no-op.
func (w *Wizard) SelectTag(id string) error {
	if w.step != StepSelectingTags {
		return ErrWrongStep
	}
	if id == "" {
		return ErrTagEmpty
	}
	if utf8.RuneCountInString(id) > models.MaxTagLength {
		return ErrTagTooLong
	}

	for _, selected := range w.selection {
		if selected == id {
			return nil
		}
	}

	if len(w.selection) >= models.MaxTagsPerTransaction {
		return ErrTagLimit
	}

	w.selection = append(w.selection, id)
	return nil
}

// DeselectTag removes a tag from the selection.
func (w *Wizard) DeselectTag(id string) {
	for i, selected := range w.selection {
		if selected == id {
			w.selection = append(w.selection[:i], w.selection[i+1:]...)
			return
		}
	}
}

// Confirm freezes the selection and returns the exact mutation that
// Submit will issue.
func (w *Wizard) Confirm() (Mutation, error) {
	if w.step != StepSelectingTags {
		return Mutation{}, ErrWrongStep
	}
	if len(w.selection) == 0 {
		return Mutation{}, ErrNoSelection
	}

	w.step = StepConfirming
	return w.mutation(), nil
}

func (w *Wizard) mutation() Mutation {
	return Mutation{
		TransactionID: w.transaction.ID,
		TagIDs:        w.Selection(),
		Mode:          w.mode,
	}
}

// Submit issues the confirmed mutation. On success the wizard reaches
// StepSucceeded and the caller re-runs the originating screen's
// pipeline. Network-level failures reset the workflow to its root
// step; all other failures keep the wizard where it is so the user can
// retry or cancel. Local state is never mutated on failure.
func (w *Wizard) Submit(ctx context.Context) error {
	if w.step != StepConfirming && w.step != StepFailed {
		return ErrWrongStep
	}

	w.step = StepSubmitting
	mutation := w.mutation()

	var err error
	switch w.mode {
	case ModeRemove:
		err = w.patcher.RemoveTags(ctx, mutation.TransactionID, mutation.TagIDs)
	default:
		err = w.patcher.AddTags(ctx, mutation.TransactionID, mutation.TagIDs)
	}

	if err == nil {
		w.step = StepSucceeded
		w.err = nil
		return nil
	}

	w.log.Error().Err(err).Str("transaction", mutation.TransactionID).Msg("tag mutation failed")
	w.err = err

	if upclient.IsTransport(err) {
		w.reset()
	} else {
		w.step = StepFailed
	}

	return err
}

// Cancel abandons the workflow and returns it to the root step.
func (w *Wizard) Cancel() {
	w.reset()
	w.err = nil
}

func (w *Wizard) reset() {
	w.step = StepSelectingTransaction
	w.transaction = models.Transaction{}
	w.selection = nil
}
