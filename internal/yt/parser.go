package yt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/patrickprogramme/captools/pkg/model"
)

// ytdlpOutput représente la partie utile de la sortie JSON de yt-dlp.
//
// Subtitles et AutomaticCaptions sont des objets dont les clés sont les codes
// langue (ex. "fr", "en", "fr-orig"). On les garde bruts pour relire les clés
// dans leur ordre d'origine : un map Go perdrait cet ordre.
type ytdlpOutput struct {
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	Subtitles         json.RawMessage `json:"subtitles"`
	AutomaticCaptions json.RawMessage `json:"automatic_captions"`
}

// ParseCaptionTracks transforme le JSON brut en CaptionTracks.
func ParseCaptionTracks(raw []byte) (model.CaptionTracks, error) {
	var empty model.CaptionTracks
	var y ytdlpOutput
	if err := json.Unmarshal(raw, &y); err != nil {
		return empty, fmt.Errorf("unmarshal ytdlp output: %w", err)
	}

	manual, err := objectKeys(y.Subtitles)
	if err != nil {
		return empty, fmt.Errorf("subtitles: %w", err)
	}
	auto, err := objectKeys(y.AutomaticCaptions)
	if err != nil {
		return empty, fmt.Errorf("automatic_captions: %w", err)
	}

	title := y.Title
	if title == "" {
		title = y.ID
	}
	return model.CaptionTracks{
		Title:     title,
		Manual:    manual,
		Automatic: auto,
	}, nil
}

// objectKeys retourne les clés d'un objet JSON dans l'ordre du document.
// null ou absent -> nil.
func objectKeys(raw json.RawMessage) ([]string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("objet JSON attendu, reçu %v", tok)
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("clé JSON inattendue %v", tok)
		}
		// on ignore la valeur (liste des formats disponibles)
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// splitJSONOutput sépare la ligne JSON des avertissements dans la sortie combinée de yt-dlp.
func splitJSONOutput(out []byte) (jsonLine []byte, warnings []string, err error) {
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "{") {
			jsonLine = []byte(line)
		} else {
			warnings = append(warnings, line)
		}
	}
	if jsonLine == nil {
		return nil, warnings, fmt.Errorf("aucun JSON détecté dans la sortie: %s", string(out))
	}
	return jsonLine, warnings, nil
}
