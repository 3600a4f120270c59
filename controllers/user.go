// controllers/user.go
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

// UpdateUserInput defines the expected JSON structure for updating a user
type UpdateUserInput struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin secretaria operador"`
	IsActive *bool   `json:"isActive"`
}

// GetUsers lists users, optionally filtered by role name
func GetUsers(c *gin.Context) {
	query := config.DB.Model(&models.User{}).Preload("Role")

	if roleName := c.Query("role"); roleName != "" {
		query = query.Joins("JOIN roles ON roles.id = users.role_id").
			Where("roles.name = ?", roleName)
	}
	if active := c.Query("isActive"); active != "" {
		query = query.Where("users.is_active = ?", active == "true")
	}

	var users []models.User
	if err := query.Order("users.name ASC").Find(&users).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "No se pudieron obtener los usuarios")
		return
	}

	c.JSON(http.StatusOK, users)
}

// UpdateUser updates a user's profile, role or active state
func UpdateUser(c *gin.Context) {
	userUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Identificador de usuario inválido")
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Datos inválidos: "+err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("id = ?", userUUID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Usuario no encontrado")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error interno del servidor")
		}
		return
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Role != nil {
		var role models.Role
		if err := config.DB.Where("name = ?", *input.Role).First(&role).Error; err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Rol inválido")
			return
		}
		user.RoleID = role.ID
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusBadRequest, "El correo ya está registrado")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "No se pudo actualizar el usuario")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuario actualizado correctamente"})
}

// DeactivateUser disables a user without removing it; users are never
// physically deleted.
func DeactivateUser(c *gin.Context) {
	userUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Identificador de usuario inválido")
		return
	}

	result := config.DB.Model(&models.User{}).
		Where("id = ?", userUUID).
		Update("is_active", false)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "No se pudo desactivar el usuario")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Usuario no encontrado")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuario desactivado correctamente"})
}
