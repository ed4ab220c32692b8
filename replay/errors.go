package replay

import "fmt"

// UnknownAttributeError reports an attribute id that is absent from the
// lobby-property table. The offending record is dropped; it must never be
// substituted with a default.
type UnknownAttributeError struct {
	ID int
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("unknown attribute id: %d", e.ID)
}

// UnknownGatewayError reports a gateway id that is absent from the
// gateway-to-region table.
type UnknownGatewayError struct {
	Gateway int
}

func (e *UnknownGatewayError) Error() string {
	return fmt.Sprintf("unknown gateway id: %d", e.Gateway)
}

// IncompleteParticipantError reports a source combination that matches none
// of the three participant variants.
type IncompleteParticipantError struct {
	SID    int
	Reason string
}

func (e *IncompleteParticipantError) Error() string {
	return fmt.Sprintf("slot %d: incomplete participant: %s", e.SID, e.Reason)
}
