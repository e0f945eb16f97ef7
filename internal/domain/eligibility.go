package domain

// IneligibilityReason причина отказа в праве бронирования
type IneligibilityReason string

const (
	// ReasonDocumentationRequired документы аккаунта не подтверждены
	ReasonDocumentationRequired IneligibilityReason = "documentation_required"
)

// EligibilityResult результат проверки права аккаунта на бронирование
// Detail уточняет причину: UI различает "документы не загружены",
// "ожидают проверки" и "отклонены"
type EligibilityResult struct {
	Eligible bool
	Reason   IneligibilityReason
	Detail   DocumentationStatus
}

// EvaluateEligibility determines whether an account may book at all.
//
// Право бронирования даёт только статус документов "approved".
// Уровень доверия принимается, но сейчас не участвует в решении -
// параметр зарезервирован под будущие правила по уровням.
func EvaluateEligibility(tier TrustTier, docs DocumentationStatus) EligibilityResult {
	_ = tier

	switch docs {
	case DocsApproved:
		return EligibilityResult{Eligible: true}
	case DocsNone, DocsPending, DocsRejected:
		return EligibilityResult{
			Eligible: false,
			Reason:   ReasonDocumentationRequired,
			Detail:   docs,
		}
	default:
		// Неизвестный статус трактуем как отсутствие документов,
		// чтобы новый статус внешнего сервиса не открывал бронирование молча
		return EligibilityResult{
			Eligible: false,
			Reason:   ReasonDocumentationRequired,
			Detail:   DocsNone,
		}
	}
}
