package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	contentmodels "slh-ecosystem-backend/internal/features/content/models"
)

// mainMenuKeyboard builds the /start menu. The admin panel row only appears
// for users whose stored admin flag is set.
func mainMenuKeyboard(siteURL string, isAdmin bool) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		{tgbotapi.NewInlineKeyboardButtonData("🌐 About the project", string(CallbackAbout))},
		{tgbotapi.NewInlineKeyboardButtonData("📚 Content & Academy", string(CallbackContent))},
		{tgbotapi.NewInlineKeyboardButtonData("💰 Coins & Trading", string(CallbackCoins))},
		{tgbotapi.NewInlineKeyboardButtonData("🎮 Games & NFT", string(CallbackGames))},
		{tgbotapi.NewInlineKeyboardButtonData("🧑‍💼 Expert Network", string(CallbackExperts))},
		{tgbotapi.NewInlineKeyboardButtonData("📈 Heavy Investments", string(CallbackInvest))},
		{tgbotapi.NewInlineKeyboardButtonURL("🔗 Visit the site", siteURL)},
	}
	if isAdmin {
		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("🔒 Admin panel", string(CallbackAdmin)),
		})
	}
	rows = append(rows, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("🛡️ Request admin access", string(CallbackRequestAdmin)),
	})

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func backToMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Back to main menu", string(CallbackMainMenu)),
		),
	)
}

func investKeyboard(links []*contentmodels.Link) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, link := range links {
		rows = append(rows, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonURL(link.Label, link.URL),
		})
	}
	rows = append(rows,
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("Invest now (from 10,000 ILS)", string(CallbackInvestNow)),
		},
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("VIP investment panel", string(CallbackInvestPanel)),
		},
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Back to main menu", string(CallbackMainMenu)),
		},
	)

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
