package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/huelladelcaminante/huella-api/internal/helpers"
	"github.com/huelladelcaminante/huella-api/internal/models"
	"github.com/huelladelcaminante/huella-api/internal/slug"
)

func CreateArtist(c *gin.Context) {
	name := c.PostForm("name")
	genre := c.PostForm("genre")
	bio := c.PostForm("bio")

	if name == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var user models.User
	if err := gormDB.Where("id = ?", userID).First(&user).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "User not found.")
		return
	}

	artistSlug, err := slug.Assign(gormDB, name, slug.KindArtist, nil)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate slug.")
		return
	}

	artist := models.Artist{
		ID:     uuid.New(),
		Name:   name,
		Slug:   artistSlug,
		Genre:  genre,
		Bio:    bio,
		UserID: user.ID,
	}

	photoFile, err := c.FormFile("photo")
	if err == nil {
		photoPath, err := helpers.UploadFile(c, photoFile, "artist_photos")
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		artist.ImagePath = photoPath
	}

	if err := createWithSlugRetry(gormDB, &artist, name, slug.KindArtist, func(s string) { artist.Slug = s }); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create artist.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Artist created successfully.",
		"artist_id": artist.ID,
		"slug":      artist.Slug,
	})
}

// createWithSlugRetry creates record and, if the unique index on slug rejects
// the write (another request took the slug between check and insert), assigns
// a fresh slug and retries once.
func createWithSlugRetry(db *gorm.DB, record interface{}, name string, kind slug.Kind, setSlug func(string)) error {
	err := db.Create(record).Error
	if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}

	fresh, assignErr := slug.Assign(db, name, kind, nil)
	if assignErr != nil {
		return assignErr
	}
	setSlug(fresh)
	return db.Create(record).Error
}

func GetArtist(c *gin.Context) {
	artistSlug := c.Param("slug")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var artist models.Artist
	if err := gormDB.Preload("Events.Dates").Where("slug = ?", artistSlug).First(&artist).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Artist not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artist.")
		return
	}

	c.JSON(http.StatusOK, artist)
}

func ListArtists(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "10")

	genre := c.Query("genre")
	name := c.Query("name")

	pageNum, err := helpers.StringToInt(page)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid page number.")
		return
	}

	limitNum, err := helpers.StringToInt(limit)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid limit.")
		return
	}

	query := gormDB.Model(&models.Artist{})
	if genre != "" {
		query = query.Where("genre = ?", genre)
	}
	if name != "" {
		query = query.Where("name ILIKE ?", fmt.Sprintf("%%%s%%", name))
	}

	var totalCount int64
	query.Count(&totalCount)

	var artists []models.Artist
	offset := (pageNum - 1) * limitNum
	err = query.Offset(offset).Limit(limitNum).Order("name ASC").Find(&artists).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving artists.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"artists":     artists,
		"total":       totalCount,
		"page":        pageNum,
		"limit":       limitNum,
		"total_pages": (totalCount + int64(limitNum) - 1) / int64(limitNum),
	})
}

func UpdateArtist(c *gin.Context) {
	artistID := c.Param("id")
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	name := c.PostForm("name")
	genre := c.PostForm("genre")
	bio := c.PostForm("bio")

	if name == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	query := gormDB.Where("id = ?", artistID)
	if c.GetString("role") != "admin" {
		query = query.Where("user_id = ?", userID)
	}

	var artist models.Artist
	if err := query.First(&artist).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusForbidden, "Artist not found or you don't have permission to update.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding artist.")
		return
	}

	// The slug only changes when the name does.
	if name != artist.Name {
		newSlug, err := slug.Assign(gormDB, name, slug.KindArtist, &artist.ID)
		if err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate slug.")
			return
		}
		artist.Slug = newSlug
	}

	artist.Name = name
	artist.Genre = genre
	artist.Bio = bio

	oldPhoto := ""
	photoFile, err := c.FormFile("photo")
	if err == nil {
		photoPath, err := helpers.UploadFile(c, photoFile, "artist_photos")
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		oldPhoto = artist.ImagePath
		artist.ImagePath = photoPath
	}

	if err := gormDB.Transaction(func(tx *gorm.DB) error {
		return tx.Save(&artist).Error
	}); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update artist.")
		return
	}

	if oldPhoto != "" {
		if err := helpers.DeleteFile(oldPhoto); err != nil {
			fmt.Printf("Error deleting old photo: %v\n", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Artist updated successfully.",
		"artist":  artist,
	})
}

func DeleteArtist(c *gin.Context) {
	artistID := c.Param("id")
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	query := gormDB.Where("id = ?", artistID)
	if c.GetString("role") != "admin" {
		query = query.Where("user_id = ?", userID)
	}

	result := query.Delete(&models.Artist{})
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete artist.")
		return
	}

	if result.RowsAffected == 0 {
		helpers.RespondWithError(c, http.StatusForbidden, "Artist not found or you don't have permission to delete.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Artist deleted successfully.",
	})
}
