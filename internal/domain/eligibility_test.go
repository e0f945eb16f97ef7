package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateEligibility(t *testing.T) {
	tests := []struct {
		name         string
		tier         TrustTier
		docs         DocumentationStatus
		wantEligible bool
		wantDetail   DocumentationStatus
	}{
		{
			name:         "подтверждённые документы дают право бронировать",
			tier:         TierStandard,
			docs:         DocsApproved,
			wantEligible: true,
		},
		{
			name:         "документы не загружены",
			tier:         TierStandard,
			docs:         DocsNone,
			wantEligible: false,
			wantDetail:   DocsNone,
		},
		{
			name:         "документы на проверке",
			tier:         TierTrusted,
			docs:         DocsPending,
			wantEligible: false,
			wantDetail:   DocsPending,
		},
		{
			name:         "документы отклонены",
			tier:         TierVIP,
			docs:         DocsRejected,
			wantEligible: false,
			wantDetail:   DocsRejected,
		},
		{
			// Уровень доверия не заменяет проверку документов
			name:         "админ без документов не имеет права бронировать",
			tier:         TierAdmin,
			docs:         DocsNone,
			wantEligible: false,
			wantDetail:   DocsNone,
		},
		{
			// Неизвестный статус внешнего сервиса не должен открывать бронирование
			name:         "неизвестный статус трактуется как отсутствие документов",
			tier:         TierStandard,
			docs:         DocumentationStatus("verified"),
			wantEligible: false,
			wantDetail:   DocsNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EvaluateEligibility(tt.tier, tt.docs)

			assert.Equal(t, tt.wantEligible, result.Eligible)
			if !tt.wantEligible {
				assert.Equal(t, ReasonDocumentationRequired, result.Reason)
				assert.Equal(t, tt.wantDetail, result.Detail)
			}
		})
	}
}

func TestTrustTier_CanManageReservations(t *testing.T) {
	assert.True(t, TierAdmin.CanManageReservations())
	assert.False(t, TierStandard.CanManageReservations())
	assert.False(t, TierTrusted.CanManageReservations())
	assert.False(t, TierVIP.CanManageReservations())
}
