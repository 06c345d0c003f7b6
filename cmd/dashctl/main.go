package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type client struct {
	BaseURL   string
	Token     string
	OutFormat string // "json" | "text"
	HTTP      *http.Client
}

func (c *client) do(method, path string, body []byte, contentType string) (int, []byte, error) {
	url := strings.TrimRight(c.BaseURL, "/") + path
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
	if body != nil {
		if contentType == "" {
			contentType = "application/json"
		}
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b, nil
}

func (c *client) print(status int, body []byte) {
	if c.OutFormat == "json" {
		var v any
		if json.Unmarshal(body, &v) == nil {
			p, _ := json.MarshalIndent(v, "", "  ")
			fmt.Println(string(p))
			return
		}
	}
	if len(body) > 0 {
		fmt.Println(string(body))
	} else {
		fmt.Printf("status=%d\n", status)
	}
}

func main() {
	var (
		baseURL = envOr("DASH_URL", "http://localhost:8080")
		token   = envOr("DASH_TOKEN", "")
		out     = envOr("DASH_OUT", "text")
		timeout = 30 * time.Second
	)

	root := &cobra.Command{
		Use:   "dashctl",
		Short: "CLI para la API de QueueCX dash",
	}

	root.PersistentFlags().StringVar(&baseURL, "url", baseURL, "URL base de la API (env DASH_URL)")
	root.PersistentFlags().StringVar(&token, "token", token, "Bearer token de sesión (env DASH_TOKEN)")
	root.PersistentFlags().StringVar(&out, "out", out, "Formato de salida: json|text")

	httpClient := &http.Client{Timeout: timeout}
	cl := &client{HTTP: httpClient}
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cl.BaseURL = baseURL
		cl.Token = token
		cl.OutFormat = out
	}

	// ==== auth ====
	authCmd := &cobra.Command{Use: "auth", Short: "Sesión: login, register, logout"}

	var loginEmail, loginPass string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Iniciar sesión con email y password",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, _ := json.Marshal(map[string]string{"email": loginEmail, "password": loginPass})
			status, body, err := cl.do("POST", "/v1/auth/login", b, "")
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("login fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email")
	loginCmd.Flags().StringVar(&loginPass, "password", "", "Password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	var regEmail, regPass string
	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Crear cuenta nueva",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, _ := json.Marshal(map[string]string{"email": regEmail, "password": regPass})
			status, body, err := cl.do("POST", "/v1/auth/register", b, "")
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("register fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	registerCmd.Flags().StringVar(&regEmail, "email", "", "Email")
	registerCmd.Flags().StringVar(&regPass, "password", "", "Password (mínimo 8 caracteres)")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Cerrar la sesión actual",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do("POST", "/v1/auth/logout", nil, "")
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}

	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Mostrar la sesión vigente",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do("GET", "/v1/auth/session", nil, "")
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("session fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}

	authCmd.AddCommand(loginCmd, registerCmd, logoutCmd, sessionCmd)

	// ==== profile ====
	profileCmd := &cobra.Command{Use: "profile", Short: "Perfil: nombre, avatar, cuentas conectadas"}

	var setName string
	setNameCmd := &cobra.Command{
		Use:   "set-name",
		Short: "Actualizar el display name (1 a 32 caracteres)",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, _ := json.Marshal(map[string]string{"display_name": setName})
			status, body, err := cl.do("POST", "/v1/profile", b, "")
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("set-name fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	setNameCmd.Flags().StringVar(&setName, "name", "", "Display name")
	_ = setNameCmd.MarkFlagRequired("name")

	var avatarFile string
	avatarCmd := &cobra.Command{
		Use:   "avatar",
		Short: "Subir un avatar (imagen, hasta 2MB)",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(avatarFile)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			w := multipart.NewWriter(&buf)
			part, err := w.CreateFormFile("avatar", filepath.Base(avatarFile))
			if err != nil {
				return err
			}
			if _, err := part.Write(data); err != nil {
				return err
			}
			if err := w.Close(); err != nil {
				return err
			}

			status, body, err := cl.do("POST", "/v1/profile/avatar", buf.Bytes(), w.FormDataContentType())
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("avatar fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	avatarCmd.Flags().StringVar(&avatarFile, "file", "", "Ruta al archivo de imagen")
	_ = avatarCmd.MarkFlagRequired("file")

	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Listar cuentas conectadas",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := cl.do("GET", "/v1/profile/accounts", nil, "")
			if err != nil {
				return err
			}
			cl.print(status, body)
			return nil
		},
	}

	profileCmd.AddCommand(setNameCmd, avatarCmd, accountsCmd)

	// ==== settings ====
	var personPrompt, personNotes string
	personalizationCmd := &cobra.Command{
		Use:   "personalization",
		Short: "Guardar settings de personalización",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, _ := json.Marshal(map[string]string{
				"system_prompt": personPrompt,
				"notes":         personNotes,
			})
			status, body, err := cl.do("PUT", "/v1/settings/personalization", b, "")
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("personalization fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	personalizationCmd.Flags().StringVar(&personPrompt, "system-prompt", "", "System prompt (hasta 1000 caracteres)")
	personalizationCmd.Flags().StringVar(&personNotes, "notes", "", "Notas (hasta 2000 caracteres)")

	settingsCmd := &cobra.Command{Use: "settings", Short: "Settings de usuario"}
	settingsCmd.AddCommand(personalizationCmd)

	// ==== activity ====
	var searchQuery string
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Buscar en la actividad reciente",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/v1/activity/search"
			if searchQuery != "" {
				path += "?q=" + strings.ReplaceAll(searchQuery, " ", "+")
			}
			status, body, err := cl.do("GET", path, nil, "")
			if err != nil {
				return err
			}
			if status/100 != 2 {
				return fmt.Errorf("search fallo: status=%d body=%s", status, string(body))
			}
			cl.print(status, body)
			return nil
		},
	}
	searchCmd.Flags().StringVar(&searchQuery, "q", "", "Texto a buscar (vacío lista todo)")

	activityCmd := &cobra.Command{Use: "activity", Short: "Actividad reciente"}
	activityCmd.AddCommand(searchCmd)

	root.AddCommand(authCmd, profileCmd, settingsCmd, activityCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
