package jobs

import (
	"log"
	"time"

	"horizon-hotel-backend/models"
	"horizon-hotel-backend/services"
	"horizon-hotel-backend/utils"

	"github.com/robfig/cron/v3"
)

// OverstaySweep flags checked-in bookings that have passed their
// check-out date without being checked out, so the front desk can chase
// them. Runs nightly; schedule comes from OVERSTAY_CRON.
type OverstaySweep struct {
	BookingSvc *services.BookingService
	AuditSvc   *services.AuditService
}

func NewOverstaySweep(bookingSvc *services.BookingService, auditSvc *services.AuditService) *OverstaySweep {
	return &OverstaySweep{BookingSvc: bookingSvc, AuditSvc: auditSvc}
}

// Run executes one sweep. Exposed for tests and manual triggering.
func (j *OverstaySweep) Run() {
	today := utils.DayOf(time.Now())

	overstays, err := j.BookingSvc.ListOverstays(today)
	if err != nil {
		log.Printf("overstay sweep failed: %v", err)
		return
	}
	if len(overstays) == 0 {
		return
	}

	log.Printf("overstay sweep: %d booking(s) past check-out", len(overstays))
	system := models.Actor{Role: models.RoleManager}
	for _, b := range overstays {
		log.Printf("overstay: booking %s (%s) due out %s",
			b.ReferenceCode, b.Customer.FullName, b.CheckOut.Format("2006-01-02"))
		if j.AuditSvc != nil {
			j.AuditSvc.Record("overstay_flagged", "booking", b.ID, system, nil,
				map[string]interface{}{"check_out": b.CheckOut, "status": b.Status},
				"nightly overstay sweep")
		}
	}
}

// Schedule registers the sweep on a cron runner and starts it.
func Schedule(sweep *OverstaySweep) *cron.Cron {
	spec := utils.EnvOrDefault("OVERSTAY_CRON", "0 6 * * *")

	c := cron.New()
	if _, err := c.AddJob(spec, sweep); err != nil {
		log.Printf("failed to schedule overstay sweep (%q): %v", spec, err)
		return c
	}
	c.Start()
	log.Printf("overstay sweep scheduled (%s)", spec)
	return c
}
