package controllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"fugazero-backend/config"
	"fugazero-backend/models"
	"fugazero-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// jobWindow is the resolved aggregation window: every job count is scoped
// to [Start, now] and, when set, to one technician.
type jobWindow struct {
	Start        time.Time
	TechnicianID *uuid.UUID
}

// buildJobWindow resolves the period keyword and technician filter for the
// caller. A technician always gets their own window; when their id cannot be
// parsed the window fails closed instead of widening to every job. The
// technicianId query parameter only applies to the other roles.
func buildJobWindow(period string, now time.Time, callerRole, callerID, technicianParam string) (jobWindow, error) {
	w := jobWindow{Start: utils.PeriodStart(period, now)}

	if callerRole == models.RoleTechnician {
		id, err := uuid.Parse(callerID)
		if err != nil {
			return jobWindow{}, fmt.Errorf("technician caller id %q: %w", callerID, err)
		}
		w.TechnicianID = &id
		return w, nil
	}

	if technicianParam != "" {
		if id, err := uuid.Parse(technicianParam); err == nil {
			w.TechnicianID = &id
		}
	}
	return w, nil
}

type groupCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type trendPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// GetDashboardStart computes the landing-dashboard statistics for the
// requested period
func GetDashboardStart(c *gin.Context) {
	now := time.Now()
	w, err := buildJobWindow(
		c.DefaultQuery("period", "month"),
		now,
		c.GetString("role"),
		c.GetString("userId"),
		c.Query("technicianId"),
	)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Sesión inválida")
		return
	}

	windowed := func() *gorm.DB {
		q := config.DB.Model(&models.Job{}).Where("jobs.created_at >= ?", w.Start)
		if w.TechnicianID != nil {
			q = q.Where("jobs.assigned_to_id = ?", *w.TechnicianID)
		}
		return q
	}

	var totalJobs, pendingJobs, inProgressJobs, completedJobs int64
	// Entity totals are global, not scoped to the window.
	var totalClients, totalTechnicians, totalServices int64
	// Revenue is the catalog price of every job completed inside the window.
	var totalRevenue float64

	if err := runQueries(
		func() error { return windowed().Count(&totalJobs).Error },
		func() error {
			return windowed().Where("status = ?", models.JobPending).Count(&pendingJobs).Error
		},
		func() error {
			return windowed().Where("status = ?", models.JobInProgress).Count(&inProgressJobs).Error
		},
		func() error {
			return windowed().Where("status = ?", models.JobCompleted).Count(&completedJobs).Error
		},
		func() error { return config.DB.Model(&models.Client{}).Count(&totalClients).Error },
		func() error {
			return config.DB.Model(&models.User{}).
				Joins("JOIN roles ON roles.id = users.role_id").
				Where("roles.name = ? AND users.is_active = true", models.RoleTechnician).
				Count(&totalTechnicians).Error
		},
		func() error { return config.DB.Model(&models.Service{}).Count(&totalServices).Error },
		func() error {
			return windowed().
				Joins("JOIN services ON services.id = jobs.service_id").
				Where("jobs.status = ?", models.JobCompleted).
				Select("COALESCE(SUM(services.price), 0)").
				Scan(&totalRevenue).Error
		},
	); err != nil {
		log.Printf("dashboard counts: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener estadísticas")
		return
	}

	var jobsByTechnician []groupCount
	if err := windowed().
		Joins("LEFT JOIN users ON users.id = jobs.assigned_to_id").
		Select("COALESCE(users.name, 'Sin asignar') as name, COUNT(*) as count").
		Group("users.name").
		Order("count DESC").
		Scan(&jobsByTechnician).Error; err != nil {
		log.Printf("dashboard technician grouping: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener estadísticas")
		return
	}

	var jobsByService []groupCount
	if err := windowed().
		Joins("LEFT JOIN services ON services.id = jobs.service_id").
		Select("COALESCE(services.name, 'Sin servicio') as name, COUNT(*) as count").
		Group("services.name").
		Order("count DESC").
		Scan(&jobsByService).Error; err != nil {
		log.Printf("dashboard service grouping: %v", err)
		utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener estadísticas")
		return
	}

	// Daily job counts for the trailing 7 calendar days ending today.
	weeklyTrend := make([]trendPoint, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		dayStart, dayEnd := utils.DayBounds(now, offset)
		q := config.DB.Model(&models.Job{}).
			Where("created_at >= ? AND created_at < ?", dayStart, dayEnd)
		if w.TechnicianID != nil {
			q = q.Where("assigned_to_id = ?", *w.TechnicianID)
		}
		var count int64
		if err := q.Count(&count).Error; err != nil {
			log.Printf("dashboard trend day %s: %v", dayStart.Format("2006-01-02"), err)
			utils.RespondWithError(c, http.StatusInternalServerError, "Error al obtener estadísticas")
			return
		}
		weeklyTrend = append(weeklyTrend, trendPoint{
			Date:  dayStart.Format("2006-01-02"),
			Count: count,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"general": gin.H{
			"totalJobs":        totalJobs,
			"pendingJobs":      pendingJobs,
			"inProgressJobs":   inProgressJobs,
			"completedJobs":    completedJobs,
			"totalClients":     totalClients,
			"totalTechnicians": totalTechnicians,
			"totalServices":    totalServices,
			"totalRevenue":     totalRevenue,
		},
		"jobsByTechnician": jobsByTechnician,
		"jobsByService":    jobsByService,
		"weeklyTrend":      weeklyTrend,
	})
}
