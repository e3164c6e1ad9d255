package app

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	btnSetRate = "Ввести курс евро к рублю"
	btnAddFile = "Добавить файл с товарами"
	btnUpdate  = "Обновить товары"
)

var mainKeyboard = tgbotapi.NewReplyKeyboard(
	tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(btnSetRate),
		tgbotapi.NewKeyboardButton(btnAddFile),
		tgbotapi.NewKeyboardButton(btnUpdate),
	),
)
