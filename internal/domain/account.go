package domain

// TrustTier represents an account classification from UserService
// Сейчас уровень доверия не влияет на право бронирования, но
// зарезервирован под дифференцированные правила (например, лимиты
// глубины бронирования по уровням)
type TrustTier string

const (
	TierStandard TrustTier = "standard"
	TierTrusted  TrustTier = "trusted"
	TierVIP      TrustTier = "vip"
	TierAdmin    TrustTier = "admin"
)

// IsValid returns true for a known trust tier
func (t TrustTier) IsValid() bool {
	switch t {
	case TierStandard, TierTrusted, TierVIP, TierAdmin:
		return true
	default:
		return false
	}
}

// CanManageReservations returns true if the tier grants access to
// other users' reservations (просмотр и отмена чужих бронирований)
func (t TrustTier) CanManageReservations() bool {
	return t == TierAdmin
}

// DocumentationStatus represents the approval state of an account's
// identity documents, owned by DocumentService
type DocumentationStatus string

const (
	DocsNone     DocumentationStatus = "none"
	DocsPending  DocumentationStatus = "pending"
	DocsApproved DocumentationStatus = "approved"
	DocsRejected DocumentationStatus = "rejected"
)

// IsValid returns true for a known documentation status
func (s DocumentationStatus) IsValid() bool {
	switch s {
	case DocsNone, DocsPending, DocsApproved, DocsRejected:
		return true
	default:
		return false
	}
}
