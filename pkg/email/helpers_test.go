package email_test

import "go-veloce-backend/config"

func testConfig(user, password string) *config.Config {
	return &config.Config{
		SMTPHost:     "smtp.gmail.com",
		SMTPPort:     "587",
		SMTPUsername: user,
		SMTPPassword: password,
		FromEmail:    user,
	}
}
