package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// FieldKind tells the schema how to coerce a form value into the save
// payload and back.
type FieldKind int

const (
	KindText FieldKind = iota
	KindInt
	KindBool
)

type Field struct {
	Name        string
	Kind        FieldKind
	DefaultText string
	DefaultInt  int
	DefaultBool bool
}

// Schema describes one settings module's fields: names, kinds and the
// defaults applied both when a loaded payload omits a field and when a form
// value fails numeric parsing.
type Schema []Field

// FormValues is the string-typed view of a form: text inputs verbatim,
// numbers as typed, checkboxes as "true"/"false".
type FormValues map[string]string

// Populate turns a decoded settings payload into form values, applying the
// schema defaults for absent fields.
func (s Schema) Populate(payload map[string]interface{}) FormValues {
	values := make(FormValues, len(s))
	for _, f := range s {
		raw, ok := payload[f.Name]
		if !ok || raw == nil {
			values[f.Name] = f.defaultString()
			continue
		}

		switch f.Kind {
		case KindInt:
			switch v := raw.(type) {
			case float64:
				values[f.Name] = strconv.Itoa(int(v))
			case string: // channel ids arrive as strings
				values[f.Name] = v
			default:
				values[f.Name] = f.defaultString()
			}
		case KindBool:
			if b, ok := raw.(bool); ok {
				values[f.Name] = strconv.FormatBool(b)
			} else {
				values[f.Name] = f.defaultString()
			}
		default:
			if str, ok := raw.(string); ok {
				values[f.Name] = str
			} else {
				values[f.Name] = fmt.Sprint(raw)
			}
		}
	}
	return values
}

// BuildPayload serializes form values into the save payload. Numeric fields
// that are empty or unparsable fall back to the field default instead of
// being dropped or sent as garbage.
func (s Schema) BuildPayload(values FormValues) map[string]interface{} {
	payload := make(map[string]interface{}, len(s))
	for _, f := range s {
		val := values[f.Name]
		switch f.Kind {
		case KindInt:
			n, err := strconv.Atoi(strings.TrimSpace(val))
			if err != nil {
				n = f.DefaultInt
			}
			payload[f.Name] = n
		case KindBool:
			payload[f.Name] = val == "true" || val == "on" || val == "1"
		default:
			payload[f.Name] = val
		}
	}
	return payload
}

func (f Field) defaultString() string {
	switch f.Kind {
	case KindInt:
		return strconv.Itoa(f.DefaultInt)
	case KindBool:
		return strconv.FormatBool(f.DefaultBool)
	default:
		return f.DefaultText
	}
}

const (
	defaultDashboardPage = "dashboard.html"
	guildOverviewFormat  = "guild.html?id=%s"
)

// RemoteForm is one settings module bound to its endpoint: load populates the
// form from the backend, save posts it back. The three dashboard modules are
// instances of this one shape.
type RemoteForm struct {
	Client *Client
	Path   string // endpoint pattern, e.g. "/guild/%s/tempvc"
	Schema Schema

	// Pages navigated to on missing guild id / feature-disabled load.
	DashboardURL string
	OverviewURL  func(guildID string) string
}

func newRemoteForm(client *Client, path string, schema Schema) *RemoteForm {
	return &RemoteForm{
		Client:       client,
		Path:         path,
		Schema:       schema,
		DashboardURL: defaultDashboardPage,
		OverviewURL: func(guildID string) string {
			return fmt.Sprintf(guildOverviewFormat, guildID)
		},
	}
}

// Load fetches the module's current settings and returns the populated form
// values. On a feature-disabled 403 it navigates to the guild overview and
// returns *FeatureDisabledError with no values.
func (f *RemoteForm) Load(ctx context.Context, guildID string) (FormValues, error) {
	if guildID == "" {
		f.Client.navigate(f.DashboardURL)
		return nil, ErrMissingGuildID
	}

	resp, err := f.Client.Do(ctx, http.MethodGet, fmt.Sprintf(f.Path, guildID), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail := readDetail(resp)
		if isFeatureDisabled(resp.StatusCode, detail) {
			f.Client.navigate(f.OverviewURL(guildID))
			return nil, &FeatureDisabledError{Detail: detail}
		}
		return nil, &RequestError{StatusCode: resp.StatusCode, Detail: detail}
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &RequestError{StatusCode: resp.StatusCode, Detail: err.Error()}
	}

	return f.Schema.Populate(payload), nil
}

// Save posts the form values back and returns the server's success message
// (or a generic fallback). Unlike Load, a feature-disabled 403 does not
// navigate anywhere; the form stays put and the caller surfaces the message.
func (f *RemoteForm) Save(ctx context.Context, guildID string, values FormValues) (string, error) {
	if guildID == "" {
		f.Client.navigate(f.DashboardURL)
		return "", ErrMissingGuildID
	}

	payload := f.Schema.BuildPayload(values)

	resp, err := f.Client.Do(ctx, http.MethodPost, fmt.Sprintf(f.Path, guildID), payload)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail := readDetail(resp)
		if isFeatureDisabled(resp.StatusCode, detail) {
			return "", &FeatureDisabledError{Detail: detail}
		}
		if detail == "" {
			detail = "Unbekannter Fehler"
		}
		return "", &RequestError{StatusCode: resp.StatusCode, Detail: detail}
	}

	var result struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil || result.Message == "" {
		return "Einstellungen gespeichert", nil
	}
	return result.Message, nil
}
