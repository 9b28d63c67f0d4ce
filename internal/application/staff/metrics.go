package staff

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Métricas del ciclo de vida de staff. Los labels de outcome son los nombres de
// la clasificación de errores que ve el caller (success, validation, duplicate_email, ...).
var (
	provisioningTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "backoffice",
		Name:      "provisioning_total",
		Help:      "Altas de staff por resultado.",
	}, []string{"outcome"})

	compensationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "backoffice",
		Name:      "provisioning_compensations_total",
		Help:      "Pasos de compensación ejecutados por resultado.",
	}, []string{"step", "result"})

	orphansTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "backoffice",
		Name:      "provisioning_orphans_total",
		Help:      "Compensaciones fallidas que dejaron un recurso huérfano (credencial o perfil).",
	})

	deprovisioningTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "backoffice",
		Name:      "deprovisioning_total",
		Help:      "Bajas de staff por resultado.",
	}, []string{"outcome"})
)
