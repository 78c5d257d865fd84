package courier

import (
	"context"
	"fmt"

	"backoffice/internal/entities"
)

// Registry manages courier records and their integration capabilities.
// Mode and credential changes are audit-logged; switching a courier away
// from a pool mode never deletes its unused tracking numbers.
type Registry struct {
	repository Repository
	audit      AuditLog
	importer   ParcelImporter
	txManager  TxManager
}

func New(repository Repository, audit AuditLog, importer ParcelImporter, txManager TxManager) *Registry {
	return &Registry{
		repository: repository,
		audit:      audit,
		importer:   importer,
		txManager:  txManager,
	}
}

func (s *Registry) CreateCourier(ctx context.Context, courierModify entities.CourierModify) (int64, error) {
	if courierModify.Name == nil || courierModify.Status == nil {
		return 0, ErrMissingRequiredFields
	}

	if !isValidName(*courierModify.Name) {
		return 0, ErrInvalidName
	}
	if !isValidStatus(courierModify.Status.String()) {
		return 0, ErrInvalidStatus
	}
	if courierModify.Mode != nil {
		if !isValidMode(*courierModify.Mode) {
			return 0, ErrInvalidMode
		}
		if courierModify.Mode.RequiresCredentials() &&
			(courierModify.APIClientID == nil || courierModify.APIKey == nil) {
			return 0, ErrCredentialsRequired
		}
	}
	if courierModify.ReturnFeePercent != nil && !isValidReturnFee(*courierModify.ReturnFeePercent) {
		return 0, ErrInvalidReturnFee
	}

	id, err := s.repository.Create(ctx, courierModify)
	if err != nil {
		return 0, fmt.Errorf("create courier: %w", err)
	}

	return id, nil
}

func (s *Registry) UpdateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.Name == nil &&
		courierModify.Status == nil &&
		courierModify.Mode == nil &&
		courierModify.APIClientID == nil &&
		courierModify.APIKey == nil &&
		courierModify.ReturnFeePercent == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if courierModify.Name != nil && !isValidName(*courierModify.Name) {
		return nil, ErrInvalidName
	}
	if courierModify.Status != nil && !isValidStatus(courierModify.Status.String()) {
		return nil, ErrInvalidStatus
	}
	if courierModify.Mode != nil && !isValidMode(*courierModify.Mode) {
		return nil, ErrInvalidMode
	}
	if courierModify.ReturnFeePercent != nil && !isValidReturnFee(*courierModify.ReturnFeePercent) {
		return nil, ErrInvalidReturnFee
	}

	courier, err := s.repository.Update(ctx, courierModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update courier: %w", err)
	}
	return courier, nil
}

func (s *Registry) GetCourier(ctx context.Context, id int64) (*entities.Courier, error) {
	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get courier: %w", err)
	}

	return courier, nil
}

func (s *Registry) GetCouriers(ctx context.Context) ([]entities.Courier, error) {
	couriers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get couriers: %w", err)
	}

	return couriers, nil
}

// GetDispatchCandidate returns the active courier with the lowest
/// configured mode: local pool allocation beats remote API calls when
// both are configured. Ties on mode resolve to the lowest id.
func (s *Registry) GetDispatchCandidate(ctx context.Context) (*entities.Courier, error) {
	courier, err := s.repository.GetDispatchCandidate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get dispatch candidate: %w", err)
	}

	return courier, nil
}

func (s *Registry) GetCapabilities(ctx context.Context, id int64) (*entities.CourierCapabilities, error) {
	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get courier: %w", err)
	}

	return &entities.CourierCapabilities{
		SupportsNewParcelAPI:      courier.Mode == entities.ModeAPINew,
		SupportsExistingParcelAPI: courier.Mode == entities.ModeAPIExisting,
	}, nil
}

// SetCapabilityMode switches a courier's integration mode. Unused
// tracking numbers owned under the previous mode stay associated with
// the courier (dormant, not deleted).
func (s *Registry) SetCapabilityMode(ctx context.Context, actor entities.Actor, id int64, mode entities.CourierMode) (*entities.Courier, error) {
	if !isValidMode(mode) {
		return nil, ErrInvalidMode
	}

	var updated *entities.Courier
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		previous, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get courier: %w", err)
		}

		updated, err = s.repository.Update(ctx, entities.CourierModify{
			ID:   &id,
			Mode: &mode,
		})
		if err != nil {
			return fmt.Errorf("update courier: %w", err)
		}

		return s.audit.Append(ctx, entities.AuditEntry{
			ActorID: actor.UserID,
			Action:  entities.ActionCourierModeChange,
			Details: map[string]interface{}{
				"courier_id":    id,
				"previous_mode": previous.Mode.String(),
				"new_mode":      mode.String(),
			},
		})
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// SetCredentials stores remote API credentials. The key value never
// reaches the audit payload.
func (s *Registry) SetCredentials(ctx context.Context, actor entities.Actor, id int64, clientID, apiKey string) (*entities.Courier, error) {
	if clientID == "" || apiKey == "" {
		return nil, ErrMissingRequiredFields
	}

	var updated *entities.Courier
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.repository.Update(ctx, entities.CourierModify{
			ID:          &id,
			APIClientID: &clientID,
			APIKey:      &apiKey,
		})
		if err != nil {
			return fmt.Errorf("update courier: %w", err)
		}

		return s.audit.Append(ctx, entities.AuditEntry{
			ActorID: actor.UserID,
			Action:  entities.ActionCourierCredsChange,
			Details: map[string]interface{}{
				"courier_id": id,
				"client_id":  clientID,
				"api_key":    "[redacted]",
			},
		})
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ImportExistingParcels pulls count parcel numbers from the courier's
// remote inventory into the local pool as unused rows.
func (s *Registry) ImportExistingParcels(ctx context.Context, actor entities.Actor, id int64, count int) (int64, error) {
	if count <= 0 {
		return 0, ErrMissingRequiredFields
	}

	courier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("get courier: %w", err)
	}

	// Удалённый вызов выполняется до транзакции, в БД попадает только
	// фактически полученный список.
	imported, err := s.importer.ImportExisting(ctx, courier, count)
	if err != nil {
		return 0, fmt.Errorf("import parcels: %w", err)
	}

	err = s.audit.Append(ctx, entities.AuditEntry{
		ActorID: actor.UserID,
		Action:  entities.ActionParcelImport,
		Details: map[string]interface{}{
			"courier_id": id,
			"requested":  count,
			"imported":   imported,
		},
	})
	if err != nil {
		return 0, fmt.Errorf("append audit entry: %w", err)
	}

	return imported, nil
}
