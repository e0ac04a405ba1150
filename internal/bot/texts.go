package bot

// Static promotional copy rendered by the informational menu sections. The
// sections carry no behavior; the dispatcher just routes to them uniformly.

const startCaption = "🚀 Join the SLH digital revolution — an ecosystem built on trust, AI and community capital! 🚀"

const startText = "Discover the economic future: SLH — a trust-based AI ecosystem open for investment."

const aboutText = `🌟 SLH Ecosystem — Investor Overview 🌟

A next-generation financial, commercial and social economic engine uniting
trading platforms, a cross-chain community wallet, a community payment
system, an automated digital bot shop and an expert academy with real
rewards — all in one economy bridging Web2, Web3 and AI.

Principle: Knowledge = Capital. Time = Currency.

Fundraising round open: investments from 10,000 ILS with dividend returns;
above 100,000 ILS — full partnership.`

const contentText = `📚 SLH Content & Academy

Online courses in healthy economics, AI and psychology. Digital sales with
rewards for contributors. Request access via /request_content <name>.`

const coinsText = `💰 SLH Coins & Trading

Internal token with staking, bridged to major exchanges. Value driven by
real community activity — part of the economic model.`

const gamesText = `🎮 Games & NFT

Arcade infrastructure, points casino and NFT drops. Earn through social
games inside the ecosystem.`

const expertsText = `🧑‍💼 Expert Network

AI-assisted matching of partners, mentors and smart deals. Build your
professional network inside the ecosystem.`

const investText = `📈 Heavy Investments

Fundraising target: 10M ILS. From 10,000 ILS — dividends; above 100,000 —
partnership. Benefits: VIP access and profit share.`

const investNowText = "Your investment interest is registered. Send the amount (from 10,000 ILS) and details; the contract is confirmed in the payments group."

const investPanelHeader = "VIP Investment Panel:"

const adminPanelHeader = "Admin panel — ecosystem overview"

const inquiryAckText = "Thanks! Your inquiry was received. Our team will get back to you shortly."

const requestAdminAckText = "Your admin request was forwarded to the community group for review."

const accessDeniedText = "Access restricted — request approval first."

const notRecognizedText = "That action isn't recognized. Use the menu below to get back on track."

const apologyText = "Something went wrong on our side. Please try again from the main menu."

const loginUsageText = "Usage: /login <password>"

const loginOKText = "Welcome back, admin. Session opened."

const loginFailedText = "Invalid credentials."

// Promo images attached to the /start reply; one is picked at random.
var promoImages = []string{
	"https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?ixlib=rb-4.0.3&auto=format&fit=crop&w=1200&q=80",
}
