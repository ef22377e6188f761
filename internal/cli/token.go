package cli

import (
	"fmt"
	"os"
	"time"

	"matching-srv/internal/model"
	"matching-srv/pkg/encrypter"
	pkgJWT "matching-srv/pkg/jwt"
	"matching-srv/pkg/scope"

	"github.com/spf13/cobra"
)

// Environment fallbacks for secrets so they stay out of shell history.
const (
	envJWTSecret    = "JWT_SECRET_KEY"
	envEncrypterKey = "ENCRYPTER_KEY"
)

func newTokenCmd(opts *globalOptions) *cobra.Command {
	var (
		payload  scope.Payload
		secret   string
		issuer   string
		audience []string
		ttl      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for local testing",
		Long: `Sign an HS256 access token the API accepts. The secret is read from
--secret or the JWT_SECRET_KEY environment variable.

Examples:
  matchctl token --user-id u-brand --role brand
  matchctl token --user-id u-1 --role influencer --ttl 1h`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				secret = os.Getenv(envJWTSecret)
			}
			switch payload.Role {
			case model.RoleAdmin, model.RoleBrand, model.RoleInfluencer:
			default:
				return fmt.Errorf("unknown role %q (use admin, brand or influencer)", payload.Role)
			}

			manager, err := pkgJWT.New(pkgJWT.Config{
				SecretKey: secret,
				Issuer:    issuer,
				Audience:  audience,
				TTL:       ttl,
			})
			if err != nil {
				return err
			}
			token, err := manager.CreateToken(payload)
			if err != nil {
				return err
			}

			if opts.output == outputJSON {
				return opts.write(cmd.OutOrStdout(), map[string]string{"token": token})
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&payload.UserID, "user-id", "", "subject user ID")
	cmd.Flags().StringVar(&payload.Username, "username", "", "subject username")
	cmd.Flags().StringVar(&payload.Role, "role", model.RoleAdmin, "role (admin, brand, influencer)")
	cmd.Flags().StringVar(&secret, "secret", "", "HS256 secret (default $"+envJWTSecret+")")
	cmd.Flags().StringVar(&issuer, "issuer", "mein-identity", "token issuer")
	cmd.Flags().StringSliceVar(&audience, "audience", nil, "token audience, repeatable")
	cmd.Flags().DurationVar(&ttl, "ttl", 8*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

func newServiceKeyCmd(opts *globalOptions) *cobra.Command {
	var (
		service      string
		key          string
		encrypterKey string
	)

	cmd := &cobra.Command{
		Use:   "service-key",
		Short: "Generate an internal service credential",
		Long: `Print the X-Service-Key header value a calling service sends and the
bcrypt hash to put under internal.service_keys.<service> in the config.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if encrypterKey == "" {
				encrypterKey = os.Getenv(envEncrypterKey)
			}
			enc, err := encrypter.New(encrypterKey)
			if err != nil {
				return err
			}

			header, err := enc.Encrypt(service + ":" + key)
			if err != nil {
				return err
			}
			hash, err := enc.HashSecret(key)
			if err != nil {
				return err
			}

			return opts.write(cmd.OutOrStdout(), map[string]string{
				"service":      service,
				"header":       header,
				"config_hash":  hash,
				"config_entry": fmt.Sprintf("internal.service_keys.%s", service),
			})
		},
	}

	cmd.Flags().StringVar(&service, "service", "", "calling service name")
	cmd.Flags().StringVar(&key, "key", "", "shared service key")
	cmd.Flags().StringVar(&encrypterKey, "encrypter-key", "", "encrypter key (default $"+envEncrypterKey+")")
	_ = cmd.MarkFlagRequired("service")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}
