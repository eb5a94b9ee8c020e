package i18n

import "github.com/qolda-ai/support-desk/internal/domain"

var ru = Catalog{
	AppTitle:    "QOLDA.AI",
	AppSubtitle: "Служба поддержки",

	Welcome:       "Привет! Я QOLDA.AI, ваш виртуальный помощник. Я могу ответить на вопросы или зарегистрировать заявку автоматически.",
	CurrentUser:   "Текущий пользователь",
	SessionClosed: "Сессия завершена",

	TimeoutMessage:       "Сессия закрыта из-за отсутствия активности (15 мин).",
	ClosedByAdminMessage: "Спасибо что воспользовались услугами QOLDA.AI, чтобы воспользоваться нашими услугами вновь перезагрузите страницу.",
	ClosedByAIMessage:    "Рад был помочь! Сессия завершена. Перезагрузите страницу для нового обращения.",
	AIFailureMessage:     "Ошибка системы.",
	DraftFailureMessage:  "Не удалось сгенерировать ответ. Попробуйте еще раз.",

	ConfirmResolutionQuestion: "Помогло ли это решение? Могу ли я закрыть заявку?",

	NotifNegativeTitle:      "Внимание: Негативный настрой",
	notifNegativeBodyPrefix: "Пользователь расстроен в заявке",
	NotifCreatedTitle:       "Новая автоматическая заявка",
	notifCreatedBodyPrefix:  "ID заявки",

	FAQs: []FAQ{
		{Question: "Как сбросить пароль?", Answer: "Перейдите на https://idm.telecom.kz и нажмите 'Забыли пароль'. Потребуется SMS подтверждение."},
		{Question: "Как настроить VPN?", Answer: "Скачайте Cisco AnyConnect с портала. Адрес сервера: vpn.telecom.kz."},
		{Question: "Где найти принтер?", Answer: "Карта принтеров доступна на интранет-портале в разделе 'Офис'."},
		{Question: "Как заказать пропуск?", Answer: "Оформите заявку в системе e-Pass или напишите боту 'Заказать пропуск'."},
		{Question: "Не работает почта", Answer: "Перезагрузите Outlook. Если не помогло, проверьте веб-версию mail.telecom.kz."},
	},

	Statuses: map[domain.TicketStatus]string{
		domain.TicketStatusOpen:       "Открыто",
		domain.TicketStatusInProgress: "В работе",
		domain.TicketStatusResolved:   "Решено",
		domain.TicketStatusClosed:     "Closed",
	},
	Priorities: map[domain.TicketPriority]string{
		domain.TicketPriorityHigh:   "Высокий",
		domain.TicketPriorityMedium: "Средний",
		domain.TicketPriorityLow:    "Низкий",
	},
	Sentiments: map[domain.Sentiment]string{
		domain.SentimentPositive:   "Позитивное",
		domain.SentimentNeutral:    "Нейтральное",
		domain.SentimentNegative:   "Негативное",
		domain.SentimentFrustrated: "Критическое/Злость",
	},
	Categories: map[domain.TicketCategory]string{
		domain.CategoryNetwork:  "Сеть/Интернет",
		domain.CategoryHardware: "Оборудование",
		domain.CategorySoftware: "ПО/Софт",
		domain.CategoryAccess:   "Доступы",
		domain.CategoryOther:    "Другое",
	},
	Sources: map[domain.TicketSource]string{
		domain.SourcePortal: "Портал",
		domain.SourceEmail:  "Почта",
		domain.SourceChat:   "Чат",
		domain.SourcePhone:  "Телефон",
	},
}
