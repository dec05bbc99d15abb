package notify

import (
	"fmt"

	"github.com/nobug-il/leadgen/internal/leads"
)

func ownerText(lead *leads.Lead, timestamp string) string {
	email := lead.Email
	if email == "" {
		email = "Not provided"
	}
	return fmt.Sprintf(`New pest control lead!

Name: %s
Phone: %s
City: %s
Email: %s
Submitted: %s

Please contact this customer within 1 hour as promised on the website.

NoBug Pest Control - Professional extermination services`,
		lead.Name, lead.Phone, lead.City, email, timestamp)
}

func ownerHTML(lead *leads.Lead, timestamp string) string {
	emailRow := ""
	if lead.Email != "" {
		emailRow = fmt.Sprintf(`
      <tr>
        <td style="padding: 10px 0; border-bottom: 1px solid #e5e7eb; font-weight: bold; color: #374151;">Email:</td>
        <td style="padding: 10px 0; border-bottom: 1px solid #e5e7eb; color: #111827;"><a href="mailto:%s" style="color: #059669; text-decoration: none;">%s</a></td>
      </tr>`, lead.Email, lead.Email)
	}

	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f8f9fa;">
  <div style="background: linear-gradient(135deg, #10b981, #059669); color: white; padding: 20px; border-radius: 10px 10px 0 0; text-align: center;">
    <h1 style="margin: 0; font-size: 24px;">🐜 New Pest Control Lead</h1>
  </div>
  <div style="background: white; padding: 30px; border-radius: 0 0 10px 10px; box-shadow: 0 4px 6px rgba(0,0,0,0.1);">
    <h2 style="color: #059669; margin-top: 0;">Customer Details</h2>
    <table style="width: 100%%; border-collapse: collapse;">
      <tr>
        <td style="padding: 10px 0; border-bottom: 1px solid #e5e7eb; font-weight: bold; color: #374151;">Name:</td>
        <td style="padding: 10px 0; border-bottom: 1px solid #e5e7eb; color: #111827;">%s</td>
      </tr>
      <tr>
        <td style="padding: 10px 0; border-bottom: 1px solid #e5e7eb; font-weight: bold; color: #374151;">Phone:</td>
        <td style="padding: 10px 0; border-bottom: 1px solid #e5e7eb; color: #111827;"><a href="tel:%s" style="color: #059669; text-decoration: none;">%s</a></td>
      </tr>
      <tr>
        <td style="padding: 10px 0; border-bottom: 1px solid #e5e7eb; font-weight: bold; color: #374151;">City:</td>
        <td style="padding: 10px 0; border-bottom: 1px solid #e5e7eb; color: #111827;">%s</td>
      </tr>%s
      <tr>
        <td style="padding: 10px 0; font-weight: bold; color: #374151;">Submitted:</td>
        <td style="padding: 10px 0; color: #111827;">%s</td>
      </tr>
    </table>

    <div style="margin-top: 30px; padding: 20px; background-color: #f0fdf4; border-left: 4px solid #10b981; border-radius: 5px;">
      <h3 style="color: #059669; margin-top: 0;">🚀 Action Required</h3>
      <p style="margin: 0; color: #374151;">Please contact this customer within 1 hour as promised on the website.</p>
    </div>
  </div>
  <div style="text-align: center; margin-top: 20px; color: #6b7280; font-size: 12px;">
    <p>NoBug Pest Control - Professional extermination services</p>
  </div>
</div>`,
		lead.Name, lead.Phone, lead.Phone, lead.City, emailRow, timestamp)
}

func confirmationText(lead *leads.Lead) string {
	return fmt.Sprintf(`שלום %s,

תודה רבה על פנייתך לשירותי ההדברה שלנו. קיבלנו את הפרטים שלך ואנחנו נחזור אליך תוך שעה.

מה קורה עכשיו?
- נחזור אליך תוך שעה
- נקבע פגישה נוחה לך
- נגיע עם כל הציוד הנדרש
- נפתור את בעיית המזיקים שלך

אם יש לך שאלות דחופות, תוכל להתקשר אלינו בכל עת.

תודה,
צוות נובאג הדברה`, lead.Name)
}

func confirmationHTML(lead *leads.Lead) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f8f9fa;">
  <div style="background: linear-gradient(135deg, #10b981, #059669); color: white; padding: 20px; border-radius: 10px 10px 0 0; text-align: center;">
    <h1 style="margin: 0; font-size: 24px;">🐜 תודה על פנייתך!</h1>
  </div>
  <div style="background: white; padding: 30px; border-radius: 0 0 10px 10px; box-shadow: 0 4px 6px rgba(0,0,0,0.1);">
    <h2 style="color: #059669; margin-top: 0;">שלום %s,</h2>
    <p style="color: #374151; line-height: 1.6;">תודה רבה על פנייתך לשירותי ההדברה שלנו. קיבלנו את הפרטים שלך ואנחנו נחזור אליך תוך שעה.</p>

    <div style="margin: 30px 0; padding: 20px; background-color: #f0fdf4; border-left: 4px solid #10b981; border-radius: 5px;">
      <h3 style="color: #059669; margin-top: 0;">📞 מה קורה עכשיו?</h3>
      <ul style="color: #374151; margin: 0; padding-left: 20px;">
        <li>נחזור אליך תוך שעה</li>
        <li>נקבע פגישה נוחה לך</li>
        <li>נגיע עם כל הציוד הנדרש</li>
        <li>נפתור את בעיית המזיקים שלך</li>
      </ul>
    </div>

    <p style="color: #374151;">אם יש לך שאלות דחופות, תוכל להתקשר אלינו בכל עת.</p>
    <p style="color: #374151; margin-bottom: 0;">תודה,<br>צוות נובאג הדברה</p>
  </div>
  <div style="text-align: center; margin-top: 20px; color: #6b7280; font-size: 12px;">
    <p>נובאג הדברה - שירותי הדברה מקצועיים</p>
  </div>
</div>`, lead.Name)
}
