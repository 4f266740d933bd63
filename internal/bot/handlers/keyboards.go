package handlers

import (
	"time"

	"github.com/go-telegram/bot/models"

	"github.com/Maks2425/telegram-bot-book-meet/internal/dates"
)

// Callback actions carried in inline keyboard button data. Parameterized
// actions append ":<value>".
const (
	actionCalculatePrice = "calculate_price"
	actionBookCleaning   = "book_cleaning"
	actionCleaningType   = "cleaning_type"
	actionPropertyType   = "property_type"
	actionSelectDate     = "select_date"
	actionSelectTime     = "select_time"
)

const bookingDaysShown = 5

func startKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "Розрахувати вартість", CallbackData: actionCalculatePrice}},
			{{Text: "Забронювати клінінг", CallbackData: actionBookCleaning}},
		},
	}
}

func cleaningTypeKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "Підтримуюче", CallbackData: actionCleaningType + ":maintenance"}},
			{{Text: "Генеральне", CallbackData: actionCleaningType + ":deep"}},
			{{Text: "Після ремонту", CallbackData: actionCleaningType + ":post_renovation"}},
		},
	}
}

func propertyTypeKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: "Квартира", CallbackData: actionPropertyType + ":apartment"},
				{Text: "Будинок", CallbackData: actionPropertyType + ":house"},
			},
		},
	}
}

func bookCleaningKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "Забронювати клінінг", CallbackData: actionBookCleaning}},
		},
	}
}

func dateSelectionKeyboard(now time.Time) *models.InlineKeyboardMarkup {
	days := dates.NextWorkingDays(now, bookingDaysShown)
	rows := make([][]models.InlineKeyboardButton, 0, len(days))
	for _, d := range days {
		rows = append(rows, []models.InlineKeyboardButton{{
			Text:         dates.FormatUkrainian(d),
			CallbackData: actionSelectDate + ":" + d.Format("2006-01-02"),
		}})
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func timeSelectionKeyboard() *models.InlineKeyboardMarkup {
	slots := dates.TimeSlots()
	rows := make([][]models.InlineKeyboardButton, 0, len(slots))
	for _, slot := range slots {
		rows = append(rows, []models.InlineKeyboardButton{{
			Text:         "🕐 " + slot,
			CallbackData: actionSelectTime + ":" + slot,
		}})
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func locationKeyboard() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		Keyboard: [][]models.KeyboardButton{
			{{Text: "📍 Поділитися локацією", RequestLocation: true}},
		},
		ResizeKeyboard:  true,
		OneTimeKeyboard: true,
	}
}
