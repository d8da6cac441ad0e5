package scaffold

// ConfigTemplate is written to a missing Renovate config file.
const ConfigTemplate = `{
  "onboarding": true,
  "prFooter": "This PR was generated by [Renovate Bot](https://github.com/renovatebot/renovate) using renovate-run."
}
`

// EnvTemplate is written to a missing env file. Every line is a comment, so
// an untouched file sets nothing.
const EnvTemplate = `# Renovate environment; uncomment and set values as needed
# RENOVATE_TOKEN=value
# RENOVATE_GITHUB_COM_TOKEN=value
`
