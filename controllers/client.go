package controllers

import (
	"errors"
	"net/http"
	"strings"

	"fugazero-backend/config"
	"fugazero-backend/models"
	"fugazero-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateClientInput defines the expected JSON structure for creating a client
type CreateClientInput struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	Address       string `json:"address"`
	Commune       string `json:"commune"`
	Company       string `json:"company"`
	RUT           string `json:"rut"`
	ContactPerson string `json:"contactPerson"`
	Notes         string `json:"notes"`
}

// UpdateClientInput defines the expected JSON structure for updating a client
type UpdateClientInput struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	Commune       *string `json:"commune"`
	Company       *string `json:"company"`
	RUT           *string `json:"rut"`
	ContactPerson *string `json:"contactPerson"`
	Notes         *string `json:"notes"`
	IsActive      *bool   `json:"isActive"`
}

// CreateClient creates a new client
func CreateClient(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Datos inválidos: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Formato de teléfono inválido")
		return
	}

	if input.RUT != "" && !utils.ValidateRUT(input.RUT) {
		utils.RespondWithError(c, http.StatusBadRequest, "RUT inválido")
		return
	}

	client := models.Client{
		CreatedByUserID: userID,
		Name:            input.Name,
		Email:           strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:           input.Phone,
		Address:         input.Address,
		Commune:         input.Commune,
		Company:         input.Company,
		RUT:             input.RUT,
		ContactPerson:   input.ContactPerson,
		Notes:           input.Notes,
		IsActive:        true,
	}

	if err := config.DB.Create(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusBadRequest, "Ya existe un cliente con este correo")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "No se pudo crear el cliente")
		}
		return
	}

	c.JSON(http.StatusCreated, client)
}

// GetClients retrieves all clients, optionally filtered by a free-text
// search and by active state
func GetClients(c *gin.Context) {
	query := config.DB.Model(&models.Client{})

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR company ILIKE ? OR rut ILIKE ?", like, like, like, like)
	}
	if active := c.Query("isActive"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}

	var clients []models.Client
	if err := query.Order("name ASC").Find(&clients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "No se pudieron obtener los clientes")
		return
	}

	c.JSON(http.StatusOK, clients)
}

// GetClient retrieves a specific client together with its job and billing stats
func GetClient(c *gin.Context) {
	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Identificador de cliente inválido")
		return
	}

	var client models.Client
	if err := config.DB.Where("id = ?", clientUUID).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Cliente no encontrado")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error interno del servidor")
		}
		return
	}

	var totalJobs, completedJobs, pendingJobs int64
	var totalBilled float64
	if err := runQueries(
		func() error {
			return config.DB.Model(&models.Job{}).
				Where("client_id = ?", client.ID).Count(&totalJobs).Error
		},
		func() error {
			return config.DB.Model(&models.Job{}).
				Where("client_id = ? AND status = ?", client.ID, models.JobCompleted).Count(&completedJobs).Error
		},
		func() error {
			return config.DB.Model(&models.Job{}).
				Where("client_id = ? AND status = ?", client.ID, models.JobPending).Count(&pendingJobs).Error
		},
		func() error {
			return config.DB.Model(&models.Invoice{}).
				Where("client_id = ? AND status <> ?", client.ID, models.InvoiceCancelled).
				Select("COALESCE(SUM(total), 0)").Scan(&totalBilled).Error
		},
	); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client": client,
		"stats": gin.H{
			"totalJobs":     totalJobs,
			"completedJobs": completedJobs,
			"pendingJobs":   pendingJobs,
			"totalBilled":   totalBilled,
		},
	})
}

// UpdateClient updates an existing client
func UpdateClient(c *gin.Context) {
	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Identificador de cliente inválido")
		return
	}

	var input UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Datos inválidos: "+err.Error())
		return
	}

	var client models.Client
	if err := config.DB.Where("id = ?", clientUUID).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Cliente no encontrado")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error interno del servidor")
		}
		return
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Email != nil {
		client.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Formato de teléfono inválido")
			return
		}
		client.Phone = *input.Phone
	}
	if input.Address != nil {
		client.Address = *input.Address
	}
	if input.Commune != nil {
		client.Commune = *input.Commune
	}
	if input.Company != nil {
		client.Company = *input.Company
	}
	if input.RUT != nil {
		if *input.RUT != "" && !utils.ValidateRUT(*input.RUT) {
			utils.RespondWithError(c, http.StatusBadRequest, "RUT inválido")
			return
		}
		client.RUT = *input.RUT
	}
	if input.ContactPerson != nil {
		client.ContactPerson = *input.ContactPerson
	}
	if input.Notes != nil {
		client.Notes = *input.Notes
	}
	if input.IsActive != nil {
		client.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusBadRequest, "Ya existe un cliente con este correo")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "No se pudo actualizar el cliente")
		}
		return
	}

	c.JSON(http.StatusOK, client)
}

// clientDeleteStatus maps the outcome of the conditional delete to a
// response. rowsAffected > 0 means the row went away; otherwise remaining
// tells a missing client (404) apart from one that still owns jobs (400).
func clientDeleteStatus(rowsAffected, remaining int64) (int, string) {
	switch {
	case rowsAffected > 0:
		return http.StatusOK, "Cliente eliminado correctamente"
	case remaining == 0:
		return http.StatusNotFound, "Cliente no encontrado"
	default:
		return http.StatusBadRequest, "No se puede eliminar un cliente con trabajos asociados"
	}
}

// DeleteClient removes a client that owns no jobs. The guard and the delete
// run as one conditional statement so a job created mid-request cannot slip
// past a separate count check.
func DeleteClient(c *gin.Context) {
	clientUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Identificador de cliente inválido")
		return
	}

	result := config.DB.
		Where("id = ? AND NOT EXISTS (SELECT 1 FROM jobs WHERE jobs.client_id = clients.id AND jobs.deleted_at IS NULL)", clientUUID).
		Delete(&models.Client{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "No se pudo eliminar el cliente")
		return
	}

	// When nothing was deleted, the follow-up count tells a missing client
	// apart from one that still owns jobs.
	var remaining int64
	if result.RowsAffected == 0 {
		if err := config.DB.Model(&models.Client{}).Where("id = ?", clientUUID).Count(&remaining).Error; err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error interno del servidor")
			return
		}
	}

	code, msg := clientDeleteStatus(result.RowsAffected, remaining)
	if code != http.StatusOK {
		utils.RespondWithError(c, code, msg)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msg})
}
