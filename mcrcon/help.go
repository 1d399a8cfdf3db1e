package mcrcon

// Usage is the long help for the rcon command.
const Usage = `Send rcon commands to a Minecraft server and print the responses
with their colour codes rendered for the terminal.

Server address, port and password can be set with following environment variables:
  MCRCON_HOST
  MCRCON_PORT
  MCRCON_PASS

- terminal mode starts if no commands are given
- Command-line options will override environment variables
- Rcon commands with spaces must be enclosed in quotes
- In terminal mode type 'Q' or press Ctrl-D / Ctrl-C to disconnect`

// Example shows a batched invocation.
const Example = `  mctext rcon -H my.minecraft.server -p password -w 5 "say Server is restarting!" save-all stop`
