package agent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/internmatch/backend/models"
	"github.com/internmatch/backend/storage"
)

var (
	// ErrInternshipNotFound is returned when the chat targets an unknown internship
	ErrInternshipNotFound = errors.New("internship not found")
	// ErrAssistantUnavailable is returned when no language model is configured
	ErrAssistantUnavailable = errors.New("chat assistant is not configured")
)

const defaultChatTimeout = 15 * time.Second

// Answerer answers questions about a single internship
type Answerer interface {
	AnswerQuestion(ctx context.Context, internship *models.Internship, question, language string) (string, error)
}

// Assistant is the internship Q&A service
type Assistant struct {
	catalog  CatalogSource
	answerer Answerer
	timeout  time.Duration
}

// NewAssistant creates a chat assistant. answerer may be nil, in which case every question is refused.
func NewAssistant(catalog CatalogSource, answerer Answerer, timeout time.Duration) *Assistant {
	if timeout <= 0 {
		timeout = defaultChatTimeout
	}
	return &Assistant{
		catalog:  catalog,
		answerer: answerer,
		timeout:  timeout,
	}
}

// Available reports whether an answerer is configured
func (a *Assistant) Available() bool {
	return a.answerer != nil
}

// Ask answers a question. Model failures degrade to a templated summary and
// empty answers to an apology in the requested language.
func (a *Assistant) Ask(ctx context.Context, internshipID, question, language string) (string, error) {
	internship, err := a.catalog.Snapshot().Get(internshipID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrInternshipNotFound
		}
		return "", err
	}

	if !a.Available() {
		return "", ErrAssistantUnavailable
	}

	askCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	answer, err := a.answerer.AnswerQuestion(askCtx, &internship, question, language)
	if err != nil {
		log.Printf("[Agent] Chat generation failed for internship %s: %v", internship.ID, err)
		return summaryAnswer(&internship), nil
	}

	if strings.TrimSpace(answer) == "" {
		return apology(language), nil
	}
	return answer, nil
}

func summaryAnswer(internship *models.Internship) string {
	skills := "N/A"
	if len(internship.Skills) > 0 {
		n := len(internship.Skills)
		if n > 3 {
			n = 3
		}
		skills = strings.Join(internship.Skills[:n], ", ")
	}
	return fmt.Sprintf("This role focuses on %s at %s. Key skills: %s. Good match if your interests align.",
		internship.Title, internship.Company, skills)
}

var apologies = map[string]string{
	"English":   "Sorry, I could not generate a response right now. Please try rephrasing your question.",
	"Hindi":     "क्षमा करें, इस समय उत्तर नहीं दे सका। कृपया अपना प्रश्न दोबारा पूछें।",
	"Tamil":     "மன்னிக்கவும், இப்போது பதிலை உருவாக்க முடியவில்லை. தயவு செய்து மீண்டும் கேளுங்கள்.",
	"Telugu":    "క్షమించండి, ఇప్పుడు స్పందన ఇవ్వలేకపోయాను. దయచేసి మళ్లీ ప్రయత్నించండి.",
	"Kannada":   "ಕ್ಷಮಿಸಿ, ಈಗ ಉತ್ತರ ನೀಡಲು ಸಾಧ್ಯವಾಗಲಿಲ್ಲ. ದಯವಿಟ್ಟು ಮತ್ತೆ ಪ್ರಯತ್ನಿಸಿ.",
	"Malayalam": "ക്ഷമിക്കണം, ഇപ്പോള്‍ മറുപടി നല്‍കാനായില്ല. ദയവായി വീണ്ടും ശ്രമിക്കുക.",
	"Bengali":   "দুঃখিত, এখন উত্তর দেওয়া সম্ভব নয়। দয়া করে আবার চেষ্টা করুন।",
	"Gujarati":  "માફ કરશો, હાલમાં જવાબ આપી શકાતો નથી. કૃપા કરીને ફરી પ્રયાસ કરો.",
	"Marathi":   "क्षमस्व, सध्या उत्तर देऊ शकलो नाही. कृपया पुन्हा प्रयत्न करा.",
	"Punjabi":   "ਮਾਫ਼ ਕਰਨਾ, ਇਸ ਸਮੇਂ ਜਵਾਬ ਨਹੀਂ ਦੇ ਸਕਿਆ। ਕਿਰਪਾ ਕਰਕੇ ਫਿਰ ਕੋਸ਼ਿਸ਼ ਕਰੋ।",
	"Odia":      "ଦୁଃଖିତ, ବର୍ତ୍ତମାନ ଉତ୍ତର ଦେଇପାରିଲି ନାହିଁ। ଦୟାକରି ପୁଣି ଚେଷ୍ଟା କରନ୍ତୁ।",
	"Assamese":  "ক্ষমা কৰিব, এই সময়ত উত্তৰ দিব নোৱাৰিলোঁ। অনুগ্ৰহ কৰি পুনৰ চেষ্টা কৰক।",
	"Urdu":      "معذرت، اس وقت جواب نہیں دے سکا۔ براہ کرم دوبارہ کوشش کریں۔",
}

func apology(language string) string {
	if msg, ok := apologies[models.LanguageName(language)]; ok {
		return msg
	}
	return apologies["English"]
}
