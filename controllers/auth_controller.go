package controllers

import (
	"errors"
	"time"

	"pds-backend/config"
	"pds-backend/logger"
	"pds-backend/models"
	"pds-backend/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// userResponse is the only shape signin ever returns for the account row.
// The password hash is not a field here, so it cannot leak.
type userResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

func (c *AuthController) Signup(ctx *fiber.Ctx) error {
	var input struct {
		Name        string `json:"name" validate:"required"`
		Surname     string `json:"surname" validate:"required"`
		PhoneNumber string `json:"phone_number" validate:"required"`
		Email       string `json:"email" validate:"required"`
		Password    string `json:"password" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "All fields are required"})
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Server error: " + err.Error()})
	}

	user := models.SignupUser{
		Name:        input.Name,
		Surname:     input.Surname,
		PhoneNumber: input.PhoneNumber,
		Email:       input.Email,
		Password:    hashed,
	}

	if err := c.DB.Create(&user).Error; err != nil {
		logger.Log.Error("signup insert failed", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error: " + err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User registered successfully"})
}

func (c *AuthController) Signin(ctx *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.SignupUser
	result := c.DB.Where("email = ?", input.Email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			// Same message as a wrong password, so callers cannot probe
			// which addresses exist.
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error: " + result.Error.Error()})
	}

	if !utils.CheckPassword(user.Password, input.Password) {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(time.Duration(config.TokenValidity) * time.Second).Unix(),
	})

	tokenString, err := token.SignedString([]byte(config.JWTSecret))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return ctx.JSON(fiber.Map{
		"message": "Login successful",
		"token":   tokenString,
		"user": userResponse{
			ID:          user.ID,
			Name:        user.Name,
			Surname:     user.Surname,
			PhoneNumber: user.PhoneNumber,
			Email:       user.Email,
		},
	})
}
