package discord

import (
	"fmt"
	"strings"

	"github.com/andikahmad/warkop/internal/cards"
	"github.com/andikahmad/warkop/internal/services/casino"
	"github.com/andikahmad/warkop/internal/services/debate"
	"github.com/andikahmad/warkop/internal/services/economy"
	"github.com/bwmarrin/discordgo"
)

const (
	colorGreen = 0x00ff00
	colorRed   = 0xff0000
	colorGold  = 0xffd700
)

// renderHand joins a hand into a display string, e.g. "A♠ 10♥"
func renderHand(hand []cards.Card) string {
	parts := make([]string, len(hand))
	for i, c := range hand {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// blackjackOutcomeText maps an outcome to its announcement line
func blackjackOutcomeText(outcome casino.BlackjackOutcome, playerTotal, dealerTotal int) string {
	switch outcome {
	case casino.OutcomePlayerBlackjack:
		return "⭐ BLACKJACK! Anda mendapatkan 21 dengan 2 kartu!"
	case casino.OutcomeDealerBlackjack:
		return "❌ Dealer mendapatkan Blackjack! Anda kalah."
	case casino.OutcomePlayerBust:
		return "❌ BUST! Kartu Anda melebihi 21!"
	case casino.OutcomeDealerBust:
		return fmt.Sprintf("✅ MENANG! Dealer BUST! Anda: %d vs Dealer: BUST", playerTotal)
	case casino.OutcomePlayerWin:
		return fmt.Sprintf("✅ MENANG! Anda: %d vs Dealer: %d", playerTotal, dealerTotal)
	case casino.OutcomePlayerLose:
		return fmt.Sprintf("❌ KALAH! Anda: %d vs Dealer: %d", playerTotal, dealerTotal)
	case casino.OutcomePush:
		return fmt.Sprintf("🤝 SERI! Anda: %d vs Dealer: %d", playerTotal, dealerTotal)
	default:
		return string(outcome)
	}
}

// handLabel renders a total with its soft marker, e.g. "17 (soft)"
func handLabel(total int, soft bool) string {
	if soft {
		return fmt.Sprintf("%d (soft)", total)
	}
	return fmt.Sprintf("%d", total)
}

// renderBlackjackTableEmbed shows the table mid-round with the dealer's
// first card hidden
func renderBlackjackTableEmbed(playerName string, playerHand, dealerUpCards []cards.Card, playerTotal int, playerSoft bool) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🎰 BLACKJACK",
		Description: "Kalahkan Dealer! Dapatkan nilai tertinggi tanpa melebihi 21.",
		Color:       colorGreen,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "🎩 Dealer",
				Value:  "🂠 " + renderHand(dealerUpCards),
				Inline: false,
			},
			{
				Name:   fmt.Sprintf("🙂 Anda [%s]", handLabel(playerTotal, playerSoft)),
				Value:  renderHand(playerHand),
				Inline: false,
			},
			{
				Name:   "📊 Status",
				Value:  "Pilih: Hit atau Stand",
				Inline: false,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Player: " + playerName},
	}
}

// renderBlackjackFinalEmbed shows the settled round with both hands
// revealed
func renderBlackjackFinalEmbed(playerName string, playerHand, dealerHand []cards.Card, playerTotal, dealerTotal int, outcome casino.BlackjackOutcome) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "🎰 BLACKJACK - GAME OVER",
		Color: colorGold,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   fmt.Sprintf("🎩 Dealer [%d]", dealerTotal),
				Value:  renderHand(dealerHand),
				Inline: false,
			},
			{
				Name:   fmt.Sprintf("🙂 Anda [%d]", playerTotal),
				Value:  renderHand(playerHand),
				Inline: false,
			},
			{
				Name:   "📊 Hasil",
				Value:  blackjackOutcomeText(outcome, playerTotal, dealerTotal),
				Inline: false,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Player: " + playerName},
	}
}

// blackjackButtons builds the Hit and Stand buttons for a live round
func blackjackButtons(roundID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Hit",
			Style:    discordgo.PrimaryButton,
			CustomID: ButtonBlackjackHit + ":" + roundID,
			Emoji:    &discordgo.ComponentEmoji{Name: "🃏"},
		},
		discordgo.Button{
			Label:    "Stand",
			Style:    discordgo.SecondaryButton,
			CustomID: ButtonBlackjackStand + ":" + roundID,
			Emoji:    &discordgo.ComponentEmoji{Name: "✋"},
		},
	}
}

// renderQQEmbed shows a settled QQ round
func renderQQEmbed(playerName string, output *casino.PlayQQOutput) *discordgo.MessageEmbed {
	color := colorRed
	if output.Outcome != casino.QQOutcomeDealerWin {
		color = colorGreen
	}

	var result string
	switch output.Outcome {
	case casino.QQOutcomePlayerWin:
		result = fmt.Sprintf("✅ MENANG! Anda: %d vs Dealer: %d", output.PlayerValue, output.DealerValue)
	case casino.QQOutcomeDealerWin:
		result = fmt.Sprintf("❌ KALAH! Anda: %d vs Dealer: %d", output.PlayerValue, output.DealerValue)
	default:
		result = fmt.Sprintf("🤝 SERI! Anda: %d vs Dealer: %d", output.PlayerValue, output.DealerValue)
	}

	return &discordgo.MessageEmbed{
		Title:       "QQ CARD",
		Description: "3 kartu: 10/J/Q/K=0, A=1, total mod 10.",
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   fmt.Sprintf("🎩 Dealer [%d]", output.DealerValue),
				Value:  renderHand(output.DealerHand),
				Inline: false,
			},
			{
				Name:   fmt.Sprintf("🙂 Anda [%d]", output.PlayerValue),
				Value:  renderHand(output.PlayerHand),
				Inline: false,
			},
			{
				Name:   "Hasil",
				Value:  result,
				Inline: false,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Player: " + playerName},
	}
}

// renderLeaderboardEmbed shows the top balances
func renderLeaderboardEmbed(entries []economy.LeaderboardEntry) *discordgo.MessageEmbed {
	medals := []string{"🥇", "🥈", "🥉"}

	var b strings.Builder
	for i, entry := range entries {
		marker := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			marker = medals[i]
		}
		fmt.Fprintf(&b, "%s <@%s> — **%d** poin\n", marker, entry.UserID, entry.Points)
	}

	description := b.String()
	if description == "" {
		description = "Belum ada yang punya poin. Main dulu!"
	}

	return &discordgo.MessageEmbed{
		Title:       "🏆 Leaderboard Poin",
		Description: description,
		Color:       colorGold,
	}
}

// renderDebateSummaryEmbed shows a debate snapshot
func renderDebateSummaryEmbed(summary *debate.SummaryOutput) *discordgo.MessageEmbed {
	status := "Selesai/Standby"
	if summary.Running {
		status = "Berjalan"
	}

	return &discordgo.MessageEmbed{
		Title: "📌 Ringkasan Debat",
		Color: colorGold,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Topik", Value: summary.Topic, Inline: false},
			{Name: "Peserta PRO", Value: renderMentions(summary.Pro), Inline: false},
			{Name: "Peserta KONTRA", Value: renderMentions(summary.Kontra), Inline: false},
			{
				Name:   "Jumlah Poin",
				Value:  fmt.Sprintf("PRO: **%d** | KONTRA: **%d**", summary.ProPoints, summary.KontraPoints),
				Inline: false,
			},
			{Name: "Status", Value: status, Inline: false},
		},
	}
}

func renderMentions(userIDs []string) string {
	if len(userIDs) == 0 {
		return "-"
	}

	mentions := make([]string, len(userIDs))
	for i, id := range userIDs {
		mentions[i] = "<@" + id + ">"
	}
	return strings.Join(mentions, ", ")
}
