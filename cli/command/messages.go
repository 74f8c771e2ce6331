package command

const backupSavedToPathMessage = "Database backup was successful. Saved to %s"
const backupSavedInDumpsFolderMessage = "Database backup was successful. %s was saved in the dumps folder."
const backupFailedMessage = "Database backup failed."

const uploadCompleteMessage = "Upload to %s complete."
const uploadFailedMessage = "Upload to %s failed."

const localDumpRemovedMessage = "Removed the local dump as it is now stored remotely."
const localDumpKeptNotice = "The local dump was kept at %s."
