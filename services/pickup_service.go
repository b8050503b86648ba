// services/pickup_service.go
package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"carwash-backend/models"
	"carwash-backend/storage"
	"carwash-backend/utils"
)

// PickupReminderService messages customers whose carpets are cleaned and
// waiting to be collected.
type PickupReminderService struct {
	stores *storage.Stores
	client *twilio.RestClient
}

func NewPickupReminderService(stores *storage.Stores) *PickupReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &PickupReminderService{
		stores: stores,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *PickupReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendPickupReminders)

	c.Start()
	log.Println("Pickup reminder scheduler started")
}

// SendPickupReminders messages the owner of every carpet sitting in
// completed status. Delivered jobs are already collected and skipped.
func (s *PickupReminderService) SendPickupReminders() {
	if os.Getenv("TWILIO_ACCOUNT_SID") == "" {
		log.Println("Twilio not configured, skipping pickup reminders")
		return
	}

	log.Println("Starting pickup reminder processing...")

	ctx := context.Background()
	ready := s.stores.Carpets.ByStatus(ctx, models.CarpetCompleted)

	for _, carpet := range ready {
		customer, ok := s.stores.Customers.Find(ctx, carpet.CustomerID)
		if !ok {
			log.Printf("Carpet %s: customer %s not found, skipping", carpet.ID, carpet.CustomerID)
			continue
		}
		s.sendReminder(customer, carpet)
	}

	log.Println("Pickup reminder processing completed")
}

// pickupMessage builds the reminder text, nudging harder once the carpet
// has been sitting for more than a day.
func pickupMessage(customer models.Customer, carpet models.Carpet) string {
	message := fmt.Sprintf(
		"Hi %s, your %s carpet is cleaned and ready for pickup. Balance due: $%.2f.",
		customer.FirstName, carpet.CarpetDetails.Type, carpet.Pricing.Balance)

	if carpet.Timeline.ActualCompletion != nil {
		if days := utils.DaysBetween(*carpet.Timeline.ActualCompletion, time.Now()); days > 1 {
			message += fmt.Sprintf(" It has been waiting for %d days.", days)
		}
	}
	return message
}

func (s *PickupReminderService) sendReminder(customer models.Customer, carpet models.Carpet) {
	message := pickupMessage(customer, carpet)

	// WhatsApp when the phone is in E.164 format, SMS otherwise.
	channel := "sms"
	to := customer.Phone
	if strings.HasPrefix(customer.Phone, "+") {
		to = "whatsapp:" + customer.Phone
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
	if err != nil {
		log.Printf("Failed to send pickup reminder to %s: %v", customer.Phone, err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Pickup reminder sent to %s, SID: %s", customer.Phone, *resp.Sid)
	} else {
		log.Printf("Pickup reminder sent to %s, but no SID returned", customer.Phone)
	}
}
