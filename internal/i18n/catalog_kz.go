package i18n

import "github.com/qolda-ai/support-desk/internal/domain"

var kz = Catalog{
	AppTitle:    "QOLDA.AI",
	AppSubtitle: "Қолдау қызметі",

	Welcome:       "Сәлем! Мен QOLDA.AI, сіздің виртуалды көмекшіңізбін. Сұрақтарға жауап бере аламын немесе өтінімді автоматты түрде тіркеймін.",
	CurrentUser:   "Ағымдағы пайдаланушы",
	SessionClosed: "Сессия аяқталды",

	TimeoutMessage:       "Белсенділік жоқ болғандықтан сессия жабылды (15 мин).",
	ClosedByAdminMessage: "QOLDA.AI қызметтерін пайдаланғаныңызға рахмет. Қызметті қайта пайдалану үшін бетті жаңартыңыз.",
	ClosedByAIMessage:    "Көмектескеніме қуаныштымын! Сессия аяқталды. Жаңа өтінім үшін бетті жаңартыңыз.",
	AIFailureMessage:     "Жүйе қатесі.",
	DraftFailureMessage:  "Жауапты құрастыру сәтсіз аяқталды. Қайталап көріңіз.",

	ConfirmResolutionQuestion: "Бұл шешім көмектесті ме? Өтінімді жаба аламын ба?",

	NotifNegativeTitle:      "Назар аударыңыз: Жағымсыз көңіл-күй",
	notifNegativeBodyPrefix: "Пайдаланушы өтінімде көңілсіз",
	NotifCreatedTitle:       "Жаңа автоматты өтінім",
	notifCreatedBodyPrefix:  "Өтінім ID",

	FAQs: []FAQ{
		{Question: "Құпия сөзді қалай өзгертуге болады?", Answer: "https://idm.telecom.kz сайтына өтіп, 'Құпия сөзді ұмыттым' түймесін басыңыз. SMS растау қажет."},
		{Question: "VPN қалай баптауға болады?", Answer: "Порталдан Cisco AnyConnect жүктеп алыңыз. Сервер мекенжайы: vpn.telecom.kz."},
		{Question: "Принтерді қайдан табуға болады?", Answer: "Принтерлер картасы интранет-порталдағы 'Кеңсе' бөлімінде қолжетімді."},
		{Question: "Рұқсаттамаға қалай тапсырыс беруге болады?", Answer: "e-Pass жүйесінде өтінім жасаңыз немесе ботқа 'Рұқсаттамаға тапсырыс беру' деп жазыңыз."},
		{Question: "Пошта жұмыс істемейді", Answer: "Outlook-ты қайта іске қосыңыз. Егер көмектеспесе, mail.telecom.kz веб-нұсқасын тексеріңіз."},
	},

	Statuses: map[domain.TicketStatus]string{
		domain.TicketStatusOpen:       "Ашық",
		domain.TicketStatusInProgress: "Орындалуда",
		domain.TicketStatusResolved:   "Шешілді",
		domain.TicketStatusClosed:     "Closed",
	},
	Priorities: map[domain.TicketPriority]string{
		domain.TicketPriorityHigh:   "Жоғары",
		domain.TicketPriorityMedium: "Орташа",
		domain.TicketPriorityLow:    "Төмен",
	},
	Sentiments: map[domain.Sentiment]string{
		domain.SentimentPositive:   "Жағымды",
		domain.SentimentNeutral:    "Бейтарап",
		domain.SentimentNegative:   "Жағымсыз",
		domain.SentimentFrustrated: "Ашулы/Сыни",
	},
	Categories: map[domain.TicketCategory]string{
		domain.CategoryNetwork:  "Желі/Интернет",
		domain.CategoryHardware: "Жабдық",
		domain.CategorySoftware: "Бағдарламалық қамтамасыз ету",
		domain.CategoryAccess:   "Қол жеткізу",
		domain.CategoryOther:    "Басқа",
	},
	Sources: map[domain.TicketSource]string{
		domain.SourcePortal: "Портал",
		domain.SourceEmail:  "Пошта",
		domain.SourceChat:   "Чат",
		domain.SourcePhone:  "Телефон",
	},
}
