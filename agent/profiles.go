package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"google.golang.org/genai"

	"github.com/tlecomte/transparence"
	"github.com/tlecomte/transparence/renderer"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the chat in charge of the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the experts' skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here to understand the published financial disclosures of French public
			officials: assets, debts, income, mandates. Devise a plan of questions for the experts
			and come up with the best response to the user's request.

			Figures come from declarations filed by the officials themselves. Never present them
			as verified facts; say "declared" and cite the filing when you can.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher returns the expert grounding answers in public sources.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert researcher on French public life,
		aware of institutions, mandates, and the latest public news about
		officeholders. Ask the Researcher whenever you need recent or
		grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert researcher on French public institutions and officeholders.
			You leverage Google Search to ground your assertions in solid, citable sources.
			You can get the latest news too, and relate it to the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the expert reading the local profile store under dir.
func NewAnalyst(dir string) *Expert {
	lib := []Function{listProfiles(dir), getProfile(dir), queryProfiles(dir)}
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He reads the local store of consolidated
		declaration profiles and can list persons, render one person's full profile,
		or run structured queries across all profiles.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the local store of consolidated declaration profiles.
				You know how to use the Tools to extract relevant information:
				  - the ranked list of persons with their aggregates
				  - one person's full profile
				  - structured queries across all profiles (JSONPath)

				Amounts are declared values in euros; a missing amount means "not provided",
				never zero. Answer with figures from the store only.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"error": err.Error()}}
}

func outputResponse(id, name string, output any) *genai.FunctionResponse {
	return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"output": output}}
}

func listProfiles(dir string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "list_profiles",
			Description: "Lists every person in the profile store, ranked by declared net worth, as a markdown table.",
			Parameters:  &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of persons with record counts and aggregates.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			profiles, err := transparence.FindProfiles(dir, "")
			if err != nil {
				return errorResponse(id, "list_profiles", err)
			}
			return outputResponse(id, "list_profiles", renderer.SummaryMarkdown(profiles))
		},
	}
}

func getProfile(dir string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "get_profile",
			Description: "Renders one person's consolidated profile as markdown. The person is matched by name (accents, case and hyphens are ignored) or by profile id.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"person": {
						Type:        genai.TypeString,
						Description: "The person's full name, e.g. \"Jean Dupont\", or a profile id.",
					},
				},
				Required: []string{"person"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The full profile: totals, records per kind, family, declarations.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			person, ok := args["person"].(string)
			if !ok {
				return errorResponse(id, "get_profile", fmt.Errorf("argument 'person' is not a string but %T", args["person"]))
			}
			p, err := transparence.FindProfile(dir, person)
			if err != nil {
				return errorResponse(id, "get_profile", err)
			}
			return outputResponse(id, "get_profile", renderer.ProfileMarkdown(p))
		},
	}
}

func queryProfiles(dir string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "query_profiles",
			Description: `Runs a JSONPath query over the array of all stored profiles and returns the matches as JSON.
			Examples: "$[?(@.aggregates.net_worth_eur > 1000000)].person" or "$[*].records.loan[*].outstanding_eur".`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"path": {
						Type:        genai.TypeString,
						Description: "The JSONPath expression, evaluated against the array of profiles.",
					},
				},
				Required: []string{"path"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The query result, JSON-encoded.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			path, ok := args["path"].(string)
			if !ok {
				return errorResponse(id, "query_profiles", fmt.Errorf("argument 'path' is not a string but %T", args["path"]))
			}
			profiles, err := transparence.FindProfiles(dir, "")
			if err != nil {
				return errorResponse(id, "query_profiles", err)
			}
			// round-trip through plain JSON so the query sees output field names
			raw, err := json.Marshal(profiles)
			if err != nil {
				return errorResponse(id, "query_profiles", err)
			}
			var data any
			if err := json.Unmarshal(raw, &data); err != nil {
				return errorResponse(id, "query_profiles", err)
			}
			result, err := jsonpath.Get(path, data)
			if err != nil {
				return errorResponse(id, "query_profiles", fmt.Errorf("jsonpath %q: %w", path, err))
			}
			out, err := json.Marshal(result)
			if err != nil {
				return errorResponse(id, "query_profiles", err)
			}
			return outputResponse(id, "query_profiles", string(out))
		},
	}
}
