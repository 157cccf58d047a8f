package errors

import "errors"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Campaign errors
	CodeCampaignNameEmpty Code = "CAMPAIGN_NAME_EMPTY"
	CodeCampaignIDEmpty   Code = "CAMPAIGN_ID_EMPTY"

	// Faction errors
	CodeFactionInvalid Code = "FACTION_INVALID"

	// Clock errors
	CodeClockInvalidDay Code = "CLOCK_INVALID_DAY"

	// Deployment errors
	CodeDeploymentLeadTimeNegative Code = "DEPLOYMENT_LEAD_TIME_NEGATIVE"
	CodeDeploymentCardRequired     Code = "DEPLOYMENT_CARD_REQUIRED"
	CodeDeploymentAreaRequired     Code = "DEPLOYMENT_AREA_REQUIRED"
	CodeDeploymentUnitRequired     Code = "DEPLOYMENT_UNIT_REQUIRED"
	CodeDeploymentUnitUnknown      Code = "DEPLOYMENT_UNIT_UNKNOWN"
	CodeDeploymentTaskForceUnknown Code = "DEPLOYMENT_TASK_FORCE_UNKNOWN"

	// Order errors
	CodeOrderAssetRequired  Code = "ORDER_ASSET_REQUIRED"
	CodeOrderAssetUnknown   Code = "ORDER_ASSET_UNKNOWN"
	CodeOrderTargetRequired Code = "ORDER_TARGET_REQUIRED"
	CodeOrderAlreadyActive  Code = "ORDER_ALREADY_ACTIVE"

	// Unit errors
	CodeUnitUnknown Code = "UNIT_UNKNOWN"

	// Storage errors
	CodeNotFound         Code = "NOT_FOUND"
	CodeRevisionConflict Code = "REVISION_CONFLICT"
)

// GetCode extracts the error code from any error.
// Returns CodeUnknown if the error is not a domain error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode checks if the error has the specified code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}
