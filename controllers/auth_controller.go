// controllers/auth_controller.go
package controllers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/karetou/karetou_backend/config"
	"github.com/karetou/karetou_backend/middleware"
	"github.com/karetou/karetou_backend/models"
	"github.com/karetou/karetou_backend/utils"
	"github.com/labstack/echo/v4"
	"github.com/lestrrat-go/jwx/jwk"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// firebaseJWKSURL serves the keys Firebase signs mobile ID tokens with.
const firebaseJWKSURL = "https://www.googleapis.com/service_accounts/v1/metadata/jwk/securetoken@system.gserviceaccount.com"

// AuthController handles admin panel and mobile sign-in
type AuthController struct {
	DB *mongo.Client
}

// NewAuthController creates a new auth controller
func NewAuthController(db *mongo.Client) *AuthController {
	return &AuthController{DB: db}
}

// Login handles admin panel sign-in: the env-configured super-admin
// first, then the adminUsers collection with bcrypt.
func (ac *AuthController) Login(c echo.Context) error {
	var loginReq models.LoginRequest
	if err := c.Bind(&loginReq); err != nil {
		log.Printf("Bind error: %v", err)
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if loginReq.Email == "" || loginReq.Password == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Email and password are required",
		})
	}

	// Super-admin login from .env
	superAdminEmail := os.Getenv("SUPER_ADMIN_EMAIL")
	superAdminPassword := os.Getenv("SUPER_ADMIN_PASSWORD")
	if superAdminEmail != "" && superAdminPassword != "" && loginReq.Email == superAdminEmail {
		if loginReq.Password != superAdminPassword {
			return c.JSON(http.StatusUnauthorized, models.Response{
				Status:  http.StatusUnauthorized,
				Message: "Invalid credentials",
			})
		}

		token, refreshToken, err := middleware.GenerateJWT("superadmin", loginReq.Email, models.RoleSuperAdmin)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.Response{
				Status:  http.StatusInternalServerError,
				Message: "Failed to generate token",
			})
		}

		ac.setSessionCookie(c, token)
		utils.LogAdminHistory(ac.DB, models.ActivityLog{
			Action:      models.ActionLogin,
			Description: "Super-admin signed in",
			ActorID:     "superadmin",
			ActorEmail:  loginReq.Email,
			ActorRole:   models.RoleSuperAdmin,
		})

		return c.JSON(http.StatusOK, models.Response{
			Status:  http.StatusOK,
			Message: "Login successful",
			Data: map[string]interface{}{
				"token":        token,
				"refreshToken": refreshToken,
				"user": map[string]interface{}{
					"email": loginReq.Email,
					"role":  models.RoleSuperAdmin,
				},
			},
		})
	}

	// Admin accounts live in the adminUsers collection
	var admin models.Admin
	err := config.GetCollection(ac.DB, "adminUsers").FindOne(context.Background(), bson.M{"email": loginReq.Email}).Decode(&admin)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			log.Printf("Error querying admin: %v", err)
		}
		// Constant time delay to prevent timing attacks
		time.Sleep(time.Millisecond * 100)
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid credentials",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(loginReq.Password)); err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid credentials",
		})
	}

	if !admin.IsActive {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Account is deactivated",
		})
	}

	token, refreshToken, err := middleware.GenerateJWT(admin.ID.Hex(), admin.Email, admin.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to generate token",
		})
	}

	ac.setSessionCookie(c, token)

	responseData := map[string]interface{}{
		"token":        token,
		"refreshToken": refreshToken,
		"user": map[string]interface{}{
			"id":       admin.ID,
			"email":    admin.Email,
			"fullName": admin.FullName,
			"role":     admin.Role,
		},
	}

	// Optional remember-me token, stored encrypted in Redis
	if loginReq.RememberMe {
		if rememberToken, err := utils.GenerateRememberMeToken(); err == nil {
			session := utils.RememberedSession{
				Email:     admin.Email,
				Role:      admin.Role,
				AccountID: admin.ID.Hex(),
				ExpiresAt: time.Now().Add(30 * 24 * time.Hour),
			}
			if err := utils.StoreRememberedSession(config.GetRedisClient(), rememberToken, session, 30*24*time.Hour); err != nil {
				log.Printf("Failed to store remember-me session: %v", err)
			} else {
				responseData["rememberMeToken"] = rememberToken
			}
		}
	}

	utils.LogAdminHistory(ac.DB, models.ActivityLog{
		Action:      models.ActionLogin,
		Description: fmt.Sprintf("Admin %s signed in", admin.Email),
		ActorID:     admin.ID.Hex(),
		ActorEmail:  admin.Email,
		ActorRole:   admin.Role,
	})

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Login successful",
		Data:    responseData,
	})
}

// RememberMeLogin exchanges a stored remember-me token for a fresh JWT.
func (ac *AuthController) RememberMeLogin(c echo.Context) error {
	var req struct {
		Token string `json:"token"`
	}
	if err := c.Bind(&req); err != nil || req.Token == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Remember me token is required",
		})
	}

	session, err := utils.RetrieveRememberedSession(config.GetRedisClient(), req.Token)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid or expired remember me token",
		})
	}

	token, refreshToken, err := middleware.GenerateJWT(session.AccountID, session.Email, session.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to generate token",
		})
	}

	ac.setSessionCookie(c, token)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Login successful",
		Data: map[string]interface{}{
			"token":        token,
			"refreshToken": refreshToken,
			"user": map[string]interface{}{
				"email": session.Email,
				"role":  session.Role,
			},
		},
	})
}

// Logout invalidates the current token and stamps lastLogin. The
// lastLogin field holds the logout time; the deactivation hint measures
// time since the account was last seen leaving.
func (ac *AuthController) Logout(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Not authenticated",
		})
	}

	if token, ok := c.Get("user").(*jwt.Token); ok {
		expiry := time.Now().Add(24 * time.Hour)
		if claims.ExpiresAt > 0 {
			expiry = time.Unix(claims.ExpiresAt, 0)
		}
		middleware.BlacklistToken(token.Raw, expiry)
	}

	if adminID, err := primitive.ObjectIDFromHex(claims.UserID); err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		_, err = config.GetCollection(ac.DB, "adminUsers").UpdateOne(ctx,
			bson.M{"_id": adminID},
			bson.M{"$set": bson.M{"lastLogin": time.Now(), "updatedAt": time.Now()}})
		if err != nil {
			log.Printf("Failed to stamp lastLogin for admin %s: %v", claims.UserID, err)
		}
	}

	utils.LogAdminHistory(ac.DB, models.ActivityLog{
		Action:      models.ActionLogout,
		Description: fmt.Sprintf("Admin %s signed out", claims.Email),
		ActorID:     claims.UserID,
		ActorEmail:  claims.Email,
		ActorRole:   claims.Role,
	})

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Logged out successfully",
	})
}

// ValidateToken lets the panel check session validity on load.
func (ac *AuthController) ValidateToken(c echo.Context) error {
	authHeader := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.JSON(http.StatusOK, utils.ValidateTokenResponse{
			Valid:   false,
			Message: "Invalid authorization header format",
		})
	}

	result, err := utils.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "), ac.DB)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to validate token",
		})
	}

	return c.JSON(http.StatusOK, result)
}

// FirebaseLogin signs in a mobile user. The app authenticates against
// Firebase; we verify the ID token signature against Google's published
// keys, upsert the user document and issue a service JWT.
func (ac *AuthController) FirebaseLogin(c echo.Context) error {
	var req models.FirebaseLoginRequest
	if err := c.Bind(&req); err != nil || req.IDToken == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "ID token is required",
		})
	}

	claims, err := ac.verifyFirebaseToken(req.IDToken)
	if err != nil {
		log.Printf("Firebase token verification failed: %v", err)
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid or expired Firebase token",
		})
	}

	email, _ := claims["email"].(string)
	sub, _ := claims["sub"].(string)
	name, _ := claims["name"].(string)
	if email == "" || sub == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Missing email or subject in token",
		})
	}
	if name == "" {
		name = req.FullName
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := config.GetCollection(ac.DB, "users")
	var user models.User
	err = collection.FindOne(ctx, bson.M{"firebaseUID": sub}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		err = collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
		if err == mongo.ErrNoDocuments {
			user = models.User{
				ID:          primitive.NewObjectID(),
				Email:       email,
				FullName:    name,
				UserType:    "user",
				IsActive:    true,
				FirebaseUID: sub,
				FCMToken:    req.FCMToken,
				CreatedAt:   time.Now(),
				UpdatedAt:   time.Now(),
			}
			if _, err := collection.InsertOne(ctx, user); err != nil {
				log.Printf("Failed to create user for Firebase UID %s: %v", sub, err)
				return c.JSON(http.StatusInternalServerError, models.Response{
					Status:  http.StatusInternalServerError,
					Message: "Failed to create user",
				})
			}
		} else if err == nil {
			// Existing email account, link the Firebase UID
			update := bson.M{"firebaseUID": sub, "updatedAt": time.Now()}
			if req.FCMToken != "" {
				update["fcmToken"] = req.FCMToken
			}
			if _, err := collection.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": update}); err != nil {
				log.Printf("Failed to link Firebase UID for %s: %v", email, err)
			}
		}
	} else if err == nil && req.FCMToken != "" && req.FCMToken != user.FCMToken {
		if _, err := collection.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": bson.M{"fcmToken": req.FCMToken, "updatedAt": time.Now()}}); err != nil {
			log.Printf("Failed to update FCM token for %s: %v", email, err)
		}
	}
	if err != nil && err != mongo.ErrNoDocuments {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Database error",
		})
	}

	if !user.IsActive {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Account is deactivated",
		})
	}

	token, refreshToken, err := middleware.GenerateJWT(user.ID.Hex(), user.Email, "user")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to generate token",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Login successful",
		Data: map[string]interface{}{
			"token":        token,
			"refreshToken": refreshToken,
			"user": map[string]interface{}{
				"id":       user.ID,
				"email":    user.Email,
				"fullName": user.FullName,
				"userType": user.UserType,
			},
		},
	})
}

// MobileLogout stamps the user's lastLogin with the logout time.
func (ac *AuthController) MobileLogout(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Not authenticated",
		})
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid user ID",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = config.GetCollection(ac.DB, "users").UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"lastLogin": time.Now(), "updatedAt": time.Now()}})
	if err != nil {
		log.Printf("Failed to stamp lastLogin for user %s: %v", claims.UserID, err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to record logout",
		})
	}

	if token, ok := c.Get("user").(*jwt.Token); ok {
		expiry := time.Now().Add(24 * time.Hour)
		if claims.ExpiresAt > 0 {
			expiry = time.Unix(claims.ExpiresAt, 0)
		}
		middleware.BlacklistToken(token.Raw, expiry)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Logged out successfully",
	})
}

// verifyFirebaseToken checks the ID token signature against Google's
// published JWKS and the audience against our project.
func (ac *AuthController) verifyFirebaseToken(idToken string) (jwt.MapClaims, error) {
	parts := strings.Split(idToken, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("malformed token")
	}

	headerBytes, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, fmt.Errorf("failed to decode JWT header: %w", err)
	}

	var header struct {
		Kid string `json:"kid"`
		Alg string `json:"alg"`
	}
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return nil, fmt.Errorf("failed to parse JWT header: %w", err)
	}

	jwkSet, err := jwk.Fetch(context.Background(), firebaseJWKSURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Firebase public keys: %w", err)
	}

	key, found := jwkSet.LookupKeyID(header.Kid)
	if !found {
		return nil, fmt.Errorf("public key not found for kid %s", header.Kid)
	}

	var pubkey interface{}
	if err := key.Raw(&pubkey); err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	claims, err := verifyIDTokenSignature(idToken, header.Alg, pubkey)
	if err != nil {
		return nil, err
	}

	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	if projectID != "" {
		if aud, _ := claims["aud"].(string); aud != projectID {
			return nil, fmt.Errorf("unexpected audience %q", aud)
		}
	}

	return claims, nil
}

// verifyIDTokenSignature checks an ID token against the given public
// key and returns its claims.
func verifyIDTokenSignature(idToken, alg string, pubkey interface{}) (jwt.MapClaims, error) {
	parsedToken, err := jwt.Parse(idToken, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != alg {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return pubkey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !parsedToken.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("failed to parse token claims")
	}
	return claims, nil
}

func (ac *AuthController) setSessionCookie(c echo.Context, token string) {
	cookie := new(http.Cookie)
	cookie.Name = "admin_token"
	cookie.Value = token
	cookie.Expires = time.Now().Add(24 * time.Hour)
	cookie.HttpOnly = true
	cookie.Secure = os.Getenv("ENV") == "production"
	cookie.SameSite = http.SameSiteStrictMode
	c.SetCookie(cookie)
}
