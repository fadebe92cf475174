package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type LegalHandler struct{}

func NewLegalHandler() *LegalHandler {
	return &LegalHandler{}
}

func (h *LegalHandler) PrivacyPolicy(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Privacy Policy - Bloom</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}h2{color:#444;margin-top:30px}</style>
</head><body>
<h1>Privacy Policy</h1>
<p>Last updated: August 2026</p>
<h2>Information We Collect</h2>
<p>We collect your email address and the wellness data you record (habits, mood, journal entries, goals, and activity metrics) to provide our services.</p>
<h2>How We Use Your Information</h2>
<p>Your data is used solely to operate Bloom, authenticate your account, and show you your own progress and insights.</p>
<h2>Data Storage</h2>
<p>Your data is stored securely on encrypted servers. We do not sell your personal information to third parties.</p>
<h2>Account Deletion</h2>
<p>You can delete your account and all associated data at any time from the app settings.</p>
<h2>Contact</h2>
<p>For questions about this policy, contact us at support@bloomapp.app</p>
</body></html>`)
}

func (h *LegalHandler) TermsOfService(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Terms of Service - Bloom</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}h2{color:#444;margin-top:30px}</style>
</head><body>
<h1>Terms of Service</h1>
<p>Last updated: August 2026</p>
<h2>Acceptance</h2>
<p>By using Bloom you agree to these terms.</p>
<h2>Your Content</h2>
<p>Journal entries, photos, and other content you record remain yours. You grant us the limited right to store and process them to operate the service.</p>
<h2>Acceptable Use</h2>
<p>Do not use the service for unlawful purposes or attempt to access other users' data.</p>
<h2>Disclaimer</h2>
<p>Bloom is a personal planning tool, not a medical device. Wellness metrics are informational and not medical advice.</p>
<h2>Contact</h2>
<p>For questions about these terms, contact us at support@bloomapp.app</p>
</body></html>`)
}
