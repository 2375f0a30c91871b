// Package domain contains application Usecases orchestrating domain logic by manager provisioning.
package domain

import (
	"context"
	"fmt"

	"github.com/Mazium/TicketEase/internal/entities"

	"github.com/google/uuid"
)

const welcomeBodyTemplate = `<html><body>
<p>Welcome to TicketEase, %s!</p>
<p>An account has been created for <b>%s</b>. Sign in with this one-time password and change it right away:</p>
<p><code>%s</code></p>
</body></html>`

// CreateManager runs the provisioning workflow: duplicate check, domain
// record creation, identity registration, welcome notification. Identity
// failure rolls the record back; notification failure is reported as a
// warning on an otherwise successful result. No manager account may persist
// without a registered identity.
func (u *Usecase) CreateManager(ctx context.Context, req entities.ProvisioningRequest) (*entities.ProvisionResult, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if req.Email == "" || req.CompanyName == "" {
		return nil, fmt.Errorf("%w: email and company_name are required", entities.ErrInvalidArgument)
	}

	existing, err := u.repo.GetManagersByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("duplicate check: %w", err)
	}
	if len(existing) > 0 {
		u.log.Infow("provisioning rejected: email taken", "email", req.Email)
		return nil, fmt.Errorf("%w: business email already registered", entities.ErrManagerExists)
	}

	credential := u.creds.Generate(req.Email, req.CompanyName)

	created, err := u.repo.CreateManager(ctx, entities.Manager{
		ID:                 uuid.NewString(),
		Email:              req.Email,
		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
		IsActive:           true,
	})
	if err != nil {
		return nil, err
	}

	res, err := u.registrar.RegisterManagerIdentity(ctx, created.ID, created.Email, credential)
	if err != nil || !res.Succeeded {
		reason := res.Message
		if err != nil {
			reason = err.Error()
		}
		u.compensateCreate(ctx, created.ID, reason)
		return nil, fmt.Errorf("%w: %s", entities.ErrIdentityRegistration, reason)
	}

	subject := fmt.Sprintf("Welcome to TicketEase, %s", created.CompanyName)
	body := fmt.Sprintf(welcomeBodyTemplate, created.CompanyName, created.Email, credential)
	if err := u.notifier.SendHTMLEmail(ctx, created.Email, subject, body); err != nil {
		u.log.Warnw("welcome email not delivered, account and identity kept",
			"manager_id", created.ID, "error", err)
		return &entities.ProvisionResult{
			Manager: created,
			Warning: fmt.Sprintf("account created, but the welcome email could not be delivered: %v", err),
		}, nil
	}

	u.log.Infow("manager provisioned", "manager_id", created.ID, "company", created.CompanyName)
	return &entities.ProvisionResult{Manager: created}, nil
}

// compensateCreate deletes the just-created manager record after a failed
// identity registration. It runs on a fresh deadline detached from the
// request so a timed-out registration call cannot also starve the rollback.
func (u *Usecase) compensateCreate(ctx context.Context, managerID, reason string) {
	compCtx, cancel := withTimeout(context.WithoutCancel(ctx), u.timeout)
	defer cancel()

	if err := u.repo.DeleteManager(compCtx, managerID); err != nil {
		// orphaned record: the invariant is broken and needs operator attention
		u.log.Errorw("compensating delete failed",
			"manager_id", managerID, "error", err, "registration_failure", reason)
		return
	}

	u.log.Infow("manager record rolled back after identity failure",
		"manager_id", managerID, "registration_failure", reason)
}
