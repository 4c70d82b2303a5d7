// Package rules validates API and session requests with ozzo-validation and
// reports failures as domain errors.
package rules

import (
	"errors"
	"fmt"

	"github.com/go-enry/go-enry/v2"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"datavisor/internal/config"
	"datavisor/internal/domain"
	formatSvc "datavisor/internal/domain/services/format"
	"datavisor/internal/views"
)

// notBinary rejects input that looks like a binary file rather than text.
var notBinary = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if enry.IsBinary([]byte(s)) {
		return errors.New("must be text, not binary data")
	}
	return nil
})

// viewIn accepts the ids of the catalogue. Empty values pass; combine with
// validation.Required where a view is mandatory.
func viewIn(registry *views.Registry) validation.Rule {
	ids := registry.IDs()
	allowed := make([]interface{}, len(ids))
	for i, id := range ids {
		allowed[i] = string(id)
	}
	return validation.In(allowed...).Error(fmt.Sprintf("must be one of %v", ids))
}

var textRules = []validation.Rule{notBinary}

// checkSize runs before the field rules so that an oversized body is a 413
// rather than a 400.
func checkSize(text string) error {
	if len(text) > config.MaxInputBytes {
		return &domain.TooLargeError{Limit: config.MaxInputBytes}
	}
	return nil
}

// wrap turns ozzo errors into a domain.ValidationError. Internal rule errors
// pass through unchanged.
func wrap(err error) error {
	if err == nil {
		return nil
	}
	var internal validation.InternalError
	if errors.As(err, &internal) {
		return err
	}
	return &domain.ValidationError{Message: err.Error()}
}

// Text validates a request carrying only text.
func Text(req *formatSvc.TextRequest) error {
	if err := checkSize(req.Text); err != nil {
		return err
	}
	return wrap(validation.ValidateStruct(req,
		validation.Field(&req.Text, textRules...),
	))
}

// Classify validates a classify request; the view is optional.
func Classify(req *formatSvc.ClassifyRequest, registry *views.Registry) error {
	if err := checkSize(req.Text); err != nil {
		return err
	}
	return wrap(validation.ValidateStruct(req,
		validation.Field(&req.Text, textRules...),
		validation.Field(&req.View, viewIn(registry)),
	))
}

// Render validates a render request; the view is required.
func Render(req *formatSvc.RenderRequest, registry *views.Registry) error {
	if err := checkSize(req.Text); err != nil {
		return err
	}
	return wrap(validation.ValidateStruct(req,
		validation.Field(&req.Text, textRules...),
		validation.Field(&req.View, validation.Required, viewIn(registry)),
	))
}

// Pretty validates a pretty-print request. The text must be present; whether
// it parses is decided by the caller.
func Pretty(req *formatSvc.PrettyRequest) error {
	if err := checkSize(req.Text); err != nil {
		return err
	}
	return wrap(validation.ValidateStruct(req,
		validation.Field(&req.Text, append([]validation.Rule{validation.Required}, textRules...)...),
	))
}

// CreateSession validates a session request.
func CreateSession(req *formatSvc.CreateSessionRequest, registry *views.Registry) error {
	return wrap(validation.ValidateStruct(req,
		validation.Field(&req.View, viewIn(registry)),
	))
}
