// controllers/service.go
package controllers

import (
	"errors"
	"net/http"

	"fugazero-backend/config"
	"fugazero-backend/models"
	"fugazero-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name             string  `json:"name" binding:"required"`
	Description      string  `json:"description"`
	Price            float64 `json:"price" binding:"required,min=0"`
	Category         string  `json:"category"`
	EstimatedMinutes int     `json:"estimatedMinutes" binding:"min=0"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name             *string  `json:"name"`
	Description      *string  `json:"description"`
	Price            *float64 `json:"price"`
	Category         *string  `json:"category"`
	EstimatedMinutes *int     `json:"estimatedMinutes"`
	IsActive         *bool    `json:"isActive"`
}

// CreateService creates a new catalog service
func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Datos inválidos: "+err.Error())
		return
	}

	service := models.Service{
		Name:             input.Name,
		Description:      input.Description,
		Price:            input.Price,
		Category:         input.Category,
		EstimatedMinutes: input.EstimatedMinutes,
		IsActive:         true,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusBadRequest, "Ya existe un servicio con este nombre")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "No se pudo crear el servicio")
		}
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetServices retrieves the service catalog
func GetServices(c *gin.Context) {
	query := config.DB.Model(&models.Service{})

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if active := c.Query("isActive"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}

	var services []models.Service
	if err := query.Order("name ASC").Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "No se pudieron obtener los servicios")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetService retrieves a specific service by ID
func GetService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Identificador de servicio inválido")
		return
	}

	var service models.Service
	if err := config.DB.Where("id = ?", serviceUUID).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Servicio no encontrado")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error interno del servidor")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

// UpdateService updates an existing service
func UpdateService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Identificador de servicio inválido")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Datos inválidos: "+err.Error())
		return
	}

	var service models.Service
	if err := config.DB.Where("id = ?", serviceUUID).First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Servicio no encontrado")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error interno del servidor")
		}
		return
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "El precio no puede ser negativo")
			return
		}
		service.Price = *input.Price
	}
	if input.Category != nil {
		service.Category = *input.Category
	}
	if input.EstimatedMinutes != nil {
		service.EstimatedMinutes = *input.EstimatedMinutes
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusBadRequest, "Ya existe un servicio con este nombre")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "No se pudo actualizar el servicio")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService soft deletes a service. Jobs that reference it keep their
// foreign key; the catalog entry just stops being offered.
func DeleteService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Identificador de servicio inválido")
		return
	}

	result := config.DB.Where("id = ?", serviceUUID).Delete(&models.Service{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "No se pudo eliminar el servicio")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Servicio no encontrado")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Servicio eliminado correctamente"})
}
