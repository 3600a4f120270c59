// services/notification_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"fugazero-backend/models"
	"fugazero-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// NotificationService sends each technician their day's job schedule.
type NotificationService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &NotificationService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// StartScheduler sends the daily schedules every morning at 8 AM.
func (s *NotificationService) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 8 * * *", func() {
		s.SendDailySchedules()
	})

	c.Start()
	log.Println("Notification scheduler started")
}

// SendDailySchedules notifies every active technician that has jobs
// scheduled for today.
func (s *NotificationService) SendDailySchedules() {
	log.Println("Starting daily schedule notifications...")

	var technicians []models.User
	if err := s.db.Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ? AND users.is_active = true", models.RoleTechnician).
		Find(&technicians).Error; err != nil {
		log.Printf("Failed to fetch technicians: %v", err)
		return
	}

	for _, technician := range technicians {
		s.notifyTechnician(technician)
	}

	log.Println("Daily schedule notifications completed")
}

func (s *NotificationService) todaysJobs(technician models.User) ([]models.Job, error) {
	dayStart, dayEnd := utils.DayBounds(time.Now(), 0)

	var jobs []models.Job
	err := s.db.Preload("Client").Preload("Service").
		Where("assigned_to_id = ? AND scheduled_at >= ? AND scheduled_at < ? AND status IN ?",
			technician.ID, dayStart, dayEnd,
			[]string{models.JobPending, models.JobInProgress}).
		Order("scheduled_at ASC").
		Find(&jobs).Error
	return jobs, err
}

func (s *NotificationService) notifyTechnician(technician models.User) {
	jobs, err := s.todaysJobs(technician)
	if err != nil {
		log.Printf("Technician %s: failed to fetch today's jobs: %v", technician.ID, err)
		return
	}
	if len(jobs) == 0 {
		return
	}
	if technician.Phone == "" {
		log.Printf("Technician %s has no phone, skipping", technician.ID)
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hola %s, tus trabajos de hoy:\n", technician.Name)
	for _, job := range jobs {
		fmt.Fprintf(&b, "- %s | %s | %s (%s)\n",
			job.ScheduledAt.Format("15:04"), job.Title, job.Client.Name, job.Address)
	}
	message := b.String()

	// WhatsApp for E.164 numbers, plain SMS otherwise.
	channel := "sms"
	to := technician.Phone
	if strings.HasPrefix(technician.Phone, "+") {
		to = "whatsapp:" + technician.Phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)
	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send schedule to %s: %v", technician.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Schedule sent to %s, SID: %s", technician.Phone, *resp.Sid)
	} else {
		log.Printf("Schedule sent to %s, but no SID returned", technician.Phone)
	}

	entry := models.NotificationLog{
		UserID:       technician.ID,
		Message:      message,
		Channel:      channel,
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("Failed to log notification for technician %s: %v", technician.ID, err)
	}
}
