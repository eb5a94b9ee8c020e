package store

import (
	"time"

	"github.com/qolda-ai/support-desk/internal/domain"
)

// DemoTickets returns the historical tickets seeded in development so the
// triage queue is not empty on first launch. Timestamps are relative to now
// so the date sort stays meaningful.
func DemoTickets(now time.Time) []domain.Ticket {
	return []domain.Ticket{
		{
			ID:          "TICK-1024",
			RequesterID: "Emp-402",
			Description: "VPN постоянно отключается каждые 5 минут, невозможно работать! Сделайте уже что-нибудь, у меня горят сроки.",
			Status:      domain.TicketStatusOpen,
			Priority:    domain.TicketPriorityHigh,
			Category:    domain.CategoryNetwork,
			Department:  "Network Security",
			Source:      domain.SourceChat,
			Summary: domain.BilingualText{
				RU: "Сбои VPN соединения",
				KZ: "VPN қосылымының ақаулары",
			},
			Sentiment:      domain.SentimentFrustrated,
			SentimentScore: 15,
			CreatedAt:      now.Add(-2 * time.Hour),
			Messages: []domain.Message{
				{
					ID:        "m1",
					Sender:    domain.SenderUser,
					Text:      "VPN постоянно отключается каждые 5 минут, невозможно работать! Сделайте уже что-нибудь, у меня горят сроки.",
					Timestamp: now.Add(-2 * time.Hour),
				},
				{
					ID:        "m2",
					Sender:    domain.SenderBot,
					Text:      "Я зарегистрировал это как проблему с сетью высокого приоритета. Специалисты уже уведомлены.",
					Timestamp: now.Add(-118 * time.Minute),
				},
			},
			Attachments: []domain.Attachment{
				{
					Name:     "vpn_error_log.png",
					MimeType: "image/png",
					URL:      "https://images.unsplash.com/photo-1555949963-aa79dcee981c?auto=format&fit=crop&w=150&q=80",
				},
			},
		},
		{
			ID:          "TICK-1023",
			RequesterID: "Emp-115",
			Description: "Добрый день. Мне нужна лицензия на Adobe Photoshop для нового маркетингового проекта.",
			Status:      domain.TicketStatusInProgress,
			Priority:    domain.TicketPriorityLow,
			Category:    domain.CategorySoftware,
			Department:  "IT Procurement",
			Source:      domain.SourceEmail,
			Summary: domain.BilingualText{
				RU: "Запрос лицензии Photoshop",
				KZ: "Photoshop лицензиясына сұраныс",
			},
			Sentiment:      domain.SentimentPositive,
			SentimentScore: 90,
			CreatedAt:      now.Add(-24 * time.Hour),
			Messages: []domain.Message{
				{
					ID:        "m3",
					Sender:    domain.SenderUser,
					Text:      "Добрый день. Мне нужна лицензия на Adobe Photoshop для нового маркетингового проекта.",
					Timestamp: now.Add(-24 * time.Hour),
				},
			},
		},
		{
			ID:          "TICK-1021",
			RequesterID: "Emp-332",
			Description: "Принтер на 3 этаже снова жует бумагу. Уже второй раз за неделю.",
			Status:      domain.TicketStatusOpen,
			Priority:    domain.TicketPriorityMedium,
			Category:    domain.CategoryHardware,
			Department:  "Desktop Support",
			Source:      domain.SourcePortal,
			Summary: domain.BilingualText{
				RU: "Неисправность принтера 3эт",
				KZ: "3-қабаттағы принтер ақауы",
			},
			Sentiment:      domain.SentimentNegative,
			SentimentScore: 40,
			CreatedAt:      now.Add(-48 * time.Hour),
			Messages: []domain.Message{
				{
					ID:        "m4",
					Sender:    domain.SenderUser,
					Text:      "Принтер на 3 этаже снова жует бумагу. Уже второй раз за неделю.",
					Timestamp: now.Add(-48 * time.Hour),
				},
				{
					ID:        "m5",
					Sender:    domain.SenderBot,
					Text:      "Принято. Инженер подойдет в течение часа.",
					Timestamp: now.Add(-47 * time.Hour),
				},
			},
		},
		{
			ID:          "TICK-1010",
			RequesterID: "Emp-888",
			Description: "Не могу зайти в учетную запись.",
			Status:      domain.TicketStatusResolved,
			Priority:    domain.TicketPriorityMedium,
			Category:    domain.CategoryAccess,
			Department:  "Identity Management",
			Source:      domain.SourcePhone,
			Summary: domain.BilingualText{
				RU: "Проблема входа в УЗ",
				KZ: "Есептік жазбаға кіру",
			},
			Sentiment:      domain.SentimentNeutral,
			SentimentScore: 50,
			CreatedAt:      now.Add(-120 * time.Hour),
			Messages: []domain.Message{
				{
					ID:        "m6",
					Sender:    domain.SenderUser,
					Text:      "Не могу зайти в учетную запись.",
					Timestamp: now.Add(-120 * time.Hour),
				},
				{
					ID:        "m7",
					Sender:    domain.SenderAgent,
					Text:      "Пароль был сброшен. Проверьте SMS.",
					Timestamp: now.Add(-118 * time.Hour),
				},
			},
		},
	}
}
