package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/huelladelcaminante/huella-api/internal/dates"
	"github.com/huelladelcaminante/huella-api/internal/helpers"
	"github.com/huelladelcaminante/huella-api/internal/models"
	"github.com/huelladelcaminante/huella-api/internal/slug"
)

// parseEventDates reads dates[0], dates[1], ... form fields as YYYY-MM-DD.
func parseEventDates(c *gin.Context) ([]models.EventDate, error) {
	var eventDates []models.EventDate
	for i := 0; ; i++ {
		dateStr := c.PostForm(fmt.Sprintf("dates[%d]", i))
		if dateStr == "" {
			break
		}
		day, err := dates.ParseDay(dateStr)
		if err != nil {
			return nil, err
		}
		eventDates = append(eventDates, models.EventDate{Date: day})
	}
	return eventDates, nil
}

func CreateEvent(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")
	genre := c.PostForm("genre")
	venue := c.PostForm("venue")
	city := c.PostForm("city")
	timeStr := c.PostForm("time")
	artistIDStr := c.PostForm("artist_id")

	eventDates, err := parseEventDates(c)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if title == "" || len(eventDates) == 0 {
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

	var artistID *uuid.UUID
	if artistIDStr != "" {
		var artist models.Artist
		if err := gormDB.Where("id = ?", artistIDStr).First(&artist).Error; err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Artist not found.")
			return
		}
		artistID = &artist.ID
	}

	eventSlug, err := slug.Assign(gormDB, title, slug.KindEvent, nil)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate slug.")
		return
	}

	event := models.Event{
		ID:          uuid.New(),
		Title:       title,
		Slug:        eventSlug,
		Description: description,
		Genre:       genre,
		Venue:       venue,
		City:        city,
		Time:        timeStr,
		Dates:       eventDates,
		ArtistID:    artistID,
		UserID:      user.ID,
	}

	bannerFile, err := c.FormFile("banner")
	if err == nil {
		bannerPath, err := helpers.UploadFile(c, bannerFile, "event_banners")
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		event.ImagePath = bannerPath
	}

	if err := createWithSlugRetry(gormDB, &event, title, slug.KindEvent, func(s string) { event.Slug = s }); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create event.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Event created successfully.",
		"event_id": event.ID,
		"slug":     event.Slug,
	})
}

func GetEvent(c *gin.Context) {
	eventSlug := c.Param("slug")
	locale := c.DefaultQuery("locale", "es")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Preload("Dates").Preload("Artist").Where("slug = ?", eventSlug).First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	now := time.Now()
	formattedDates := make([]gin.H, 0, len(event.Dates))
	for _, d := range event.Dates {
		formattedDates = append(formattedDates, gin.H{
			"date":      d.Date,
			"formatted": dates.FormatDateWithWeekday(d.Date, locale),
			"past":      dates.IsPast(d.Date, now),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"event":          event,
		"time_formatted": dates.FormatTime(event.Time, locale),
		"dates":          formattedDates,
	})
}

func ListEvents(c *gin.Context) {
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
	dateStr := c.Query("date")
	rangeStr := c.DefaultQuery("range", string(dates.GranularityDay))
	includePast := c.Query("include_past") == "true"

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

	query := gormDB.Model(&models.Event{})
	if genre != "" {
		query = query.Where("genre = ?", genre)
	}
	if name != "" {
		query = query.Where("title ILIKE ?", fmt.Sprintf("%%%s%%", name))
	}

	if dateStr != "" {
		reference, err := dates.ParseDay(dateStr)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		granularity, err := dates.ParseGranularity(rangeStr)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		start, end := dates.Range(reference, granularity)

		inRange := gormDB.Model(&models.EventDate{}).Select("event_id").Where("date >= ? AND date <= ?", start, end)
		query = query.Where("events.id IN (?)", inRange)
	} else if !includePast {
		upcoming := gormDB.Model(&models.EventDate{}).Select("event_id").Where("date >= ?", dates.StartOfDay(time.Now()))
		query = query.Where("events.id IN (?)", upcoming)
	}

	var totalCount int64
	query.Count(&totalCount)

	var events []models.Event
	offset := (pageNum - 1) * limitNum
	err = query.Preload("Dates").Preload("Artist").Offset(offset).Limit(limitNum).Order("created_at DESC").Find(&events).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events":      events,
		"total":       totalCount,
		"page":        pageNum,
		"limit":       limitNum,
		"total_pages": (totalCount + int64(limitNum) - 1) / int64(limitNum),
	})
}

func UpdateEvent(c *gin.Context) {
	eventID := c.Param("id")
	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	genre := c.PostForm("genre")
	venue := c.PostForm("venue")
	city := c.PostForm("city")
	timeStr := c.PostForm("time")

	eventDates, err := parseEventDates(c)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if title == "" || len(eventDates) == 0 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	query := gormDB.Where("id = ?", eventID)
	if c.GetString("role") != "admin" {
		query = query.Where("user_id = ?", userID)
	}

	var event models.Event
	if err := query.First(&event).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusForbidden, "Event not found or you don't have permission to update.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error finding event.")
		return
	}

	// The slug only changes when the title does.
	if title != event.Title {
		newSlug, err := slug.Assign(gormDB, title, slug.KindEvent, &event.ID)
		if err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate slug.")
			return
		}
		event.Slug = newSlug
	}

	event.Title = title
	event.Description = description
	event.Genre = genre
	event.Venue = venue
	event.City = city
	event.Time = timeStr

	oldBanner := ""
	bannerFile, err := c.FormFile("banner")
	if err == nil {
		bannerPath, err := helpers.UploadFile(c, bannerFile, "event_banners")
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		oldBanner = event.ImagePath
		event.ImagePath = bannerPath
	}

	err = gormDB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&event).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", event.ID).Delete(&models.EventDate{}).Error; err != nil {
			return err
		}
		for i := range eventDates {
			eventDates[i].EventID = event.ID
		}
		return tx.Create(&eventDates).Error
	})
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update event.")
		return
	}

	if oldBanner != "" {
		if err := helpers.DeleteFile(oldBanner); err != nil {
			fmt.Printf("Error deleting old banner: %v\n", err)
		}
	}

	event.Dates = eventDates
	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully.",
		"event":   event,
	})
}

func DeleteEvent(c *gin.Context) {
	eventID := c.Param("id")
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

	query := gormDB.Where("id = ?", eventID)
	if c.GetString("role") != "admin" {
		query = query.Where("user_id = ?", userID)
	}

	result := query.Delete(&models.Event{})
	if result.Error != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete event.")
		return
	}

	if result.RowsAffected == 0 {
		helpers.RespondWithError(c, http.StatusForbidden, "Event not found or you don't have permission to delete.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted successfully.",
	})
}
