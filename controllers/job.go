// controllers/job.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"fugazero-backend/config"
	"fugazero-backend/models"
	"fugazero-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateJobInput defines the expected JSON structure for scheduling a job
type CreateJobInput struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	Priority     string     `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	ScheduledAt  time.Time  `json:"scheduledAt" binding:"required"`
	Address      string     `json:"address"`
	ClientID     uuid.UUID  `json:"clientId" binding:"required"`
	ServiceID    uuid.UUID  `json:"serviceId" binding:"required"`
	AssignedToID *uuid.UUID `json:"assignedToId"`
}

// UpdateJobInput defines the expected JSON structure for updating a job
type UpdateJobInput struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH"`
	ScheduledAt *time.Time `json:"scheduledAt"`
	Address     *string    `json:"address"`
	ServiceID   *uuid.UUID `json:"serviceId"`
	AssignedTo  *uuid.UUID `json:"assignedToId"`
	Unassign    *bool      `json:"unassign"`
}

// UpdateJobStatusInput carries a technician-driven status transition,
// optionally with completion evidence.
type UpdateJobStatusInput struct {
	Status       string   `json:"status" binding:"required"`
	Observations string   `json:"observations"`
	EvidenceURLs []string `json:"evidenceUrls"`
	SignatureURL string   `json:"signatureUrl"`
}

// CreateJob schedules a new job for a client
func CreateJob(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreateJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Datos inválidos: "+err.Error())
		return
	}

	var client models.Client
	if err := config.DB.Where("id = ?", input.ClientID).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Cliente no encontrado")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error interno del servidor")
		}
		return
	}

	var service models.Service
	if err := config.DB.Where("id = ?", input.ServiceID).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Servicio no encontrado")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error interno del servidor")
		}
		return
	}

	if input.AssignedToID != nil {
		var technician models.User
		if err := config.DB.Joins("Role").
			Where("users.id = ? AND \"Role\".name = ?", *input.AssignedToID, models.RoleTechnician).
			First(&technician).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusNotFound, "Técnico no encontrado")
			} else {
				utils.RespondWithError(c, http.StatusInternalServerError, "Error interno del servidor")
			}
			return
		}
	}

	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	address := input.Address
	if address == "" {
		address = client.Address
	}

	job := models.Job{
		Title:        input.Title,
		Description:  input.Description,
		Status:       models.JobPending,
		Priority:     priority,
		ScheduledAt:  input.ScheduledAt,
		Address:      address,
		ClientID:     input.ClientID,
		ServiceID:    input.ServiceID,
		AssignedToID: input.AssignedToID,
		CreatedByID:  userID,
		EvidenceURLs: models.StringList{},
	}

	if err := config.DB.Create(&job).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "No se pudo crear el trabajo")
		return
	}

	c.JSON(http.StatusCreated, job)
}

// GetJobs lists jobs with optional filters. Technicians only ever see
// their own assigned jobs, regardless of the filters they send.
func GetJobs(c *gin.Context) {
	query := config.DB.Model(&models.Job{}).
		Preload("Client").Preload("Service").Preload("AssignedTo")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if priority := c.Query("priority"); priority != "" {
		query = query.Where("priority = ?", priority)
	}
	if clientID := c.Query("clientId"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if dateFrom := c.Query("dateFrom"); dateFrom != "" {
		if t, err := time.Parse("2006-01-02", dateFrom); err == nil {
			query = query.Where("scheduled_at >= ?", t)
		}
	}
	if dateTo := c.Query("dateTo"); dateTo != "" {
		if t, err := time.Parse("2006-01-02", dateTo); err == nil {
			query = query.Where("scheduled_at < ?", t.AddDate(0, 0, 1))
		}
	}

	if c.GetString("role") == models.RoleTechnician {
		query = query.Where("assigned_to_id = ?", c.GetString("userId"))
	} else if technicianID := c.Query("technicianId"); technicianID != "" {
		query = query.Where("assigned_to_id = ?", technicianID)
	}

	var jobs []models.Job
	if err := query.Order("scheduled_at DESC").Find(&jobs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "No se pudieron obtener los trabajos")
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// GetJob retrieves a specific job by ID
func GetJob(c *gin.Context) {
	jobUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Identificador de trabajo inválido")
		return
	}

	var job models.Job
	if err := config.DB.Preload("Client").Preload("Service").Preload("AssignedTo").
		Where("id = ?", jobUUID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Trabajo no encontrado")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error interno del servidor")
		}
		return
	}

	// A technician can only look at jobs assigned to them.
	if c.GetString("role") == models.RoleTechnician {
		if job.AssignedToID == nil || job.AssignedToID.String() != c.GetString("userId") {
			utils.RespondWithError(c, http.StatusForbidden, "No tiene permisos para ver este trabajo")
			return
		}
	}

	c.JSON(http.StatusOK, job)
}

// UpdateJob updates scheduling fields and reassignment
func UpdateJob(c *gin.Context) {
	jobUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Identificador de trabajo inválido")
		return
	}

	var input UpdateJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Datos inválidos: "+err.Error())
		return
	}

	var job models.Job
	if err := config.DB.Where("id = ?", jobUUID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Trabajo no encontrado")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error interno del servidor")
		}
		return
	}

	if input.Title != nil {
		job.Title = *input.Title
	}
	if input.Description != nil {
		job.Description = *input.Description
	}
	if input.Priority != nil {
		job.Priority = *input.Priority
	}
	if input.ScheduledAt != nil {
		job.ScheduledAt = *input.ScheduledAt
	}
	if input.Address != nil {
		job.Address = *input.Address
	}
	if input.ServiceID != nil {
		var service models.Service
		if err := config.DB.Where("id = ?", *input.ServiceID).First(&service).Error; err != nil {
			utils.RespondWithError(c, http.StatusNotFound, "Servicio no encontrado")
			return
		}
		job.ServiceID = *input.ServiceID
	}
	if input.Unassign != nil && *input.Unassign {
		job.AssignedToID = nil
	} else if input.AssignedTo != nil {
		var technician models.User
		if err := config.DB.Joins("Role").
			Where("users.id = ? AND \"Role\".name = ?", *input.AssignedTo, models.RoleTechnician).
			First(&technician).Error; err != nil {
			utils.RespondWithError(c, http.StatusNotFound, "Técnico no encontrado")
			return
		}
		job.AssignedToID = input.AssignedTo
	}

	if err := config.DB.Save(&job).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "No se pudo actualizar el trabajo")
		return
	}

	c.JSON(http.StatusOK, job)
}

// UpdateJobStatus moves a job through its lifecycle. Technicians may only
// progress their own jobs; transitions never go backward.
func UpdateJobStatus(c *gin.Context) {
	jobUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Identificador de trabajo inválido")
		return
	}

	var input UpdateJobStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Datos inválidos: "+err.Error())
		return
	}

	if !models.ValidStatus(input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Estado inválido")
		return
	}

	var job models.Job
	if err := config.DB.Where("id = ?", jobUUID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Trabajo no encontrado")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error interno del servidor")
		}
		return
	}

	if c.GetString("role") == models.RoleTechnician {
		if job.AssignedToID == nil || job.AssignedToID.String() != c.GetString("userId") {
			utils.RespondWithError(c, http.StatusForbidden, "Solo puede actualizar sus propios trabajos")
			return
		}
	}

	if !models.CanTransition(job.Status, input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Transición de estado no permitida")
		return
	}

	job.Status = input.Status
	if input.Status == models.JobCompleted {
		now := time.Now()
		job.CompletedAt = &now
		if input.Observations != "" {
			job.Observations = input.Observations
		}
		if len(input.EvidenceURLs) > 0 {
			job.EvidenceURLs = input.EvidenceURLs
		}
		if input.SignatureURL != "" {
			job.SignatureURL = input.SignatureURL
		}
	}

	if err := config.DB.Save(&job).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "No se pudo actualizar el trabajo")
		return
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob soft deletes a job
func DeleteJob(c *gin.Context) {
	jobUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Identificador de trabajo inválido")
		return
	}

	result := config.DB.Where("id = ?", jobUUID).Delete(&models.Job{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "No se pudo eliminar el trabajo")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Trabajo no encontrado")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trabajo eliminado correctamente"})
}
