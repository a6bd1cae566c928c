package gemini

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/internmatch/backend/config"
	"github.com/internmatch/backend/learning"
	"github.com/internmatch/backend/models"
)

// textModel is the part of a Gemini backend the client needs
type textModel interface {
	generate(ctx context.Context, prompt string, jsonMode bool) (string, error)
	close() error
}

// Client wraps a Gemini backend (Vertex AI or API key)
type Client struct {
	model     textModel
	modelName string
}

// NewClient creates a new Gemini client for the configured provider
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	var (
		model textModel
		err   error
	)

	switch cfg.LLMProvider {
	case config.ProviderGemini:
		model, err = newAPIKeyModel(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		model, err = newVertexModel(ctx, cfg.ProjectID, cfg.Location, cfg.GeminiModel)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	log.Printf("[Gemini] Using provider=%s model=%s", cfg.LLMProvider, cfg.GeminiModel)
	return &Client{model: model, modelName: cfg.GeminiModel}, nil
}

// Close closes the Gemini client
func (c *Client) Close() error {
	return c.model.close()
}

// GenerateLearningPath asks the model for a structured learning path in the
// profile's language and validates the reply against the learning path schema.
func (c *Client) GenerateLearningPath(ctx context.Context, profile *models.UserProfile) ([]models.LearningStep, error) {
	text, err := c.model.generate(ctx, buildLearningPathPrompt(profile), true)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	steps, err := learning.DecodeLearningPath(cleanJSON(text))
	if err != nil {
		log.Printf("[Gemini] Failed to parse learning path response: %s", text)
		return nil, err
	}

	log.Printf("[Gemini] Generated learning path with %d steps", len(steps))
	return steps, nil
}

// AnswerQuestion answers a free-form question about one internship
func (c *Client) AnswerQuestion(ctx context.Context, internship *models.Internship, question, language string) (string, error) {
	text, err := c.model.generate(ctx, buildChatPrompt(internship, question, language), false)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func buildLearningPathPrompt(profile *models.UserProfile) string {
	language := models.LanguageName(profile.Language)

	return fmt.Sprintf(`Create a personalized learning path for a student seeking internships.

STUDENT PROFILE:
- Current Skills: %s
- Education Level: %s
- Department: %s
- Preferred Sector: %s
- Location: %s
- Interests: %s

REQUIREMENTS:
1. Generate a stepwise learning roadmap with 3-5 steps
2. Each step should include: skill to learn, specific resource/course, and brief description
3. Focus on skills that are commonly required for internships in their sector
4. Include both technical and soft skills
5. Suggest practical projects or certifications where relevant
6. IMPORTANT: Generate all content in %s

Return a JSON object with exactly this shape:
{
  "learning_path": [
    {
      "step": 1,
      "skill": "Skill name",
      "resource": "Specific course or resource",
      "description": "Brief description of what to learn",
      "duration": "Estimated time (e.g., 2-3 weeks)",
      "difficulty": "Beginner/Intermediate/Advanced"
    }
  ]
}

Return ONLY the JSON object, no markdown formatting, no explanation.`,
		joinOr(profile.Skills, "None specified"),
		orDefault(profile.Education, "Not specified"),
		orDefault(profile.Department, "Not specified"),
		orDefault(profile.Sector, "Not specified"),
		orDefault(profile.Location, "Not specified"),
		joinOr(profile.Interests, "Not specified"),
		language,
	)
}

func buildChatPrompt(internship *models.Internship, question, language string) string {
	return fmt.Sprintf(`You are an assistant helping students learn about internship opportunities.

INTERNSHIP DETAILS:
- Title: %s
- Company: %s
- Education Required: %s
- Department: %s
- Sector: %s
- Location: %s
- Skills Required: %s
- Duration: %s
- Stipend: ₹%s
- Description: %s

STUDENT QUESTION: %s

Answer in %s in 2-3 short sentences:
1) directly answer the question
2) give one key insight about the internship
3) give brief practical advice`,
		internship.Title,
		internship.Company,
		internship.Education,
		internship.Department,
		internship.Sector,
		internship.Location,
		joinOr(internship.Skills, "N/A"),
		internship.Duration,
		string(internship.Stipend),
		internship.Description,
		question,
		models.LanguageName(language),
	)
}

// Helper functions

func joinOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func cleanJSON(text string) string {
	// Remove markdown code blocks if present
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	return text
}
