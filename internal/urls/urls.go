package urls

// Project URLs shown in the terminal UI and in troubleshooting tips

// Repository is the project home page
const Repository = "https://github.com/rihenm13-code/password-checker"

// Issues is where users report problems
const Issues = Repository + "/issues"

// ServiceSetup explains how to start the scoring service that pwcheck talks to
const ServiceSetup = Repository + "#running-the-scoring-service"
