package authController

import (
	"fmt"
	"log"
	"strings"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/utils"
	authValidator "lms/validators/auth"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Email senders are package variables so tests can observe notifications
// without a mail transport.
var (
	sendActivationEmail = utils.SendActivationEmail
	sendWelcomeEmail    = utils.SendWelcomeEmail
)

// Register creates a new account in the pending (inactive) state and mails the
// activation link. The notification hook runs synchronously at the end of the
// registration flow.
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if username already exists
	if err := db.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already taken!", nil)
	}

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Username: reqData.Username,
		Email:    reqData.Email,
		Password: string(hashedPassword),
		Role:     models.RoleUser,
		IsActive: false, // pending until the activation link is visited
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	notifyUserRegistered(newUser)

	// Clean Response
	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully. Check your email to activate your account.", newUser)
}

// notifyUserRegistered mails the activation link for a freshly created
// account. A mail failure is logged, not surfaced; the account stays pending
// and can be re-activated through support.
func notifyUserRegistered(user models.User) {
	token, err := middleware.GenerateActivationToken(user.ID)
	if err != nil {
		log.Printf("Error generating activation token for user %d: %v", user.ID, err)
		return
	}

	activationLink := fmt.Sprintf("%s/auth/activate/%s", config.AppConfig.BaseURL, token)
	if err := sendActivationEmail(user.Username, user.Email, activationLink); err != nil {
		log.Printf("Error sending activation email to %s: %v", user.Email, err)
	}
}

// Activate transitions a pending account to active. Repeat calls are a no-op
// and the welcome email is sent only on the first transition. Unknown or
// tampered tokens degrade to an invalid-link error.
func Activate(c *fiber.Ctx) error {
	token := c.Params("token")

	userID, err := middleware.ParseActivationToken(token)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Invalid activation link!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ?", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Invalid activation link!", nil)
	}

	if user.IsActive {
		// Already activated, nothing to re-send
		return c.Redirect("/", fiber.StatusFound)
	}

	user.IsActive = true
	if err := database.Database.Db.Save(&user).Error; err != nil {
		log.Printf("Error activating user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to activate account!", nil)
	}

	if err := sendWelcomeEmail(user.Username, user.Email); err != nil {
		log.Printf("Error sending welcome email to %s: %v", user.Email, err)
	}

	return c.Redirect("/", fiber.StatusFound)
}

// Login verifies credentials and issues a session token. Pending accounts are
// refused even with valid credentials.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	var result *gorm.DB

	// Retrieve user by email or username
	if reqData.Email != "" {
		result = database.Database.Db.Where("email = ?", reqData.Email).First(&user)
	} else {
		result = database.Database.Db.Where("username = ?", reqData.Username).First(&user)
	}

	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	// Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if !user.IsActive {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Account not activated! Check your email for the activation link.", nil)
	}

	// Sanitize user data
	user.Password = ""

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role, user.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// googleUserinfo is the subset of Google's userinfo response we consume
type googleUserinfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleLogin exchanges a Google access token for a session token, creating an
// active account on first sight. Enabled only when GOOGLE_USERINFO_URL is
// configured.
func GoogleLogin(c *fiber.Ctx) error {
	if config.AppConfig.GoogleUserinfoURL == "" {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Social login is not enabled!", nil)
	}

	reqData, ok := c.Locals("validatedGoogleLogin").(*authValidator.GoogleLoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	client := resty.New()
	var info googleUserinfo
	resp, err := client.R().
		SetAuthToken(reqData.AccessToken).
		SetResult(&info).
		Get(config.AppConfig.GoogleUserinfoURL)
	if err != nil {
		log.Printf("Error verifying Google access token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to verify access token!", nil)
	}
	if resp.StatusCode() != fiber.StatusOK || info.Email == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid access token!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ?", info.Email).First(&user).Error; err != nil {
		// First login through Google: provision an already-active account with
		// an unusable random password.
		randomSecret, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), config.AppConfig.SaltRound)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}

		user = models.User{
			Username: googleUsername(info),
			Email:    info.Email,
			Password: string(randomSecret),
			Role:     models.RoleUser,
			IsActive: true, // ownership of the mailbox is already proven
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Error creating user from Google login: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
		}
	}

	if !user.IsActive {
		user.IsActive = true
		if err := db.Save(&user).Error; err != nil {
			log.Printf("Error activating user %d via Google login: %v", user.ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
		}
	}

	user.Password = ""

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role, user.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":  user,
		"token": token,
	})
}

func googleUsername(info googleUserinfo) string {
	base := strings.SplitN(info.Email, "@", 2)[0]
	if base == "" {
		base = "user"
	}
	// Keep usernames unique without an extra round-trip
	return fmt.Sprintf("%s-%s", base, uuid.NewString()[:8])
}
