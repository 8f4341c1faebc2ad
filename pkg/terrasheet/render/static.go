package render

// Fixed output documents. These mirror the deployment package layout the
// downstream base-vm module expects; only terraform.tfvars carries values
// from the build sheet.

const moduleTF = `# Begin m-basevm.tf

module "base-vm" {
  source = "app.terraform.io/wab-cloudengineering-org/base-vm/iac"

  # Using a variable for the module version isn't supported yet:
  # https://github.com/hashicorp/terraform/issues/28912
  version                              = "__DYNAMIC_MODULE_VERSION__"
  spn                                  = var.spn
  location                             = var.location
  resource_group_name                  = var.resource_group_name
  application_security_groups          = var.application_security_groups
  key_vault                            = var.key_vault
  user_assigned_identity_name          = var.user_assigned_identity_name
  disk_encryption_set_name             = var.disk_encryption_set_name
  admin_username                       = var.admin_username
  admin_password                       = var.admin_password
  vm_list                              = var.vm_list
  network_security_rules               = var.network_security_rules
  common_tags                          = var.common_tags
  resource_specific_tags               = var.resource_specific_tags
}
`

const variablesTF = `# Begin variables.tf

variable "spn" {
  type        = string
  default     = null
  description = "Display name for Service Principal"
}

variable "resource_group_name" {
  type    = string
  default = null
}

variable "location" {
  type     = string
  default  = "WEST US 3"
  nullable = false
  validation {
    condition = contains(
      [
        "WEST US",
        "WEST US 2",
        "WEST US 3",
        "EAST US",
      ], var.location
    )
    error_message = format("A location value of '%s' is not allowed.", var.location)
  }
}

variable "application_security_groups" {
  type = map(object({
    name = string
  }))
  default     = {}
  description = "Application security groups keyed by reference name."
  nullable    = false
}

variable "key_vault" {
  type = object({
    name                       = optional(string)
    sku_name                   = optional(string)
    soft_delete_retention_days = optional(number)
    public_network_access      = optional(bool)
    snet_key                   = string
    key_name                   = optional(string)
  })
  default = {
    name                       = null
    sku_name                   = "standard"
    soft_delete_retention_days = 90
    public_network_access      = true
    snet_key                   = "snet1"
    key_name                   = null
  }
  nullable = false
}

variable "user_assigned_identity_name" {
  type        = string
  default     = null
  description = "User assigned identity name"
}

variable "disk_encryption_set_name" {
  type        = string
  default     = null
  description = "Disk encryption set name"
}

variable "network_security_rules" {
  type = object({
    resource_group_name         = string
    network_security_group_name = string
    rules = list(object({
      name                    = optional(string)
      priority                = number
      direction               = string
      access                  = string
      protocol                = string
      description             = optional(string)
      source_port_range       = optional(string)
      destination_port_ranges = optional(list(string))
      source_asg_keys         = optional(list(string))
      destination_asg_keys    = optional(list(string))
    }))
  })
  default = null
}

variable "admin_username" {
  type     = string
  default  = "cisadmin"
  nullable = false
}

variable "admin_password" {
  sensitive = true
  type      = string
  default   = null
}

variable "vm_list" {
  type = map(object({
    name              = string
    size              = string
    zone              = optional(number)
    image_os          = string
    image_urn         = optional(string)
    marketplace_image = optional(bool)
    ip_allocation     = string
    identity_type     = optional(string)
    os_disk_size      = number
    os_disk_type      = optional(string)
    os_disk_tier      = optional(string)
    snet_key          = string
    asg_key           = string
    tags = object({
      role        = string
      patch-optin = string
      snow-item   = optional(string)
    })
  }))
  default     = null
  description = "Virtual machines keyed by reference name."
  nullable    = true
}

variable "common_tags" {
  type = object({
    terraform           = optional(bool)
    shared-service-name = string
    app-name            = string
    environment         = string
    app-tier            = string
    snow-item           = string
    it-cost-center      = string
    it-domain           = string
  })

  description = "Required tags on all resources."

  validation {
    condition = contains(
      [
        "DEV",
        "QA",
        "UAT",
        "PROD",
        "DR"
      ], var.common_tags.environment
    )
    error_message = format("An environment tag value of '%s' is not allowed.", var.common_tags.environment)
  }

  validation {
    condition = contains(
      [
        "Platinum",
        "Gold",
        "Iron",
        "Silver",
        "Bronze",
      ], var.common_tags.app-tier
    )
    error_message = format("A app-tier tag value of '%s' is not allowed.", var.common_tags.app-tier)
  }
}

variable "resource_specific_tags" {
  type = object({
    role        = optional(string)
    patch-optin = optional(string)
  })
  default = {
    role        = "NA"
    patch-optin = "NA"
  }
  description = "Per-resource tags. VM values are controlled under vm_list."

  validation {
    condition     = contains(["YES", "NO", "NA"], var.resource_specific_tags.patch-optin)
    error_message = format("A patch-optin tag value of '%s' is not allowed. Please use one of the following: YES, NO, NA", var.resource_specific_tags.patch-optin)
  }
}
`

const outputsTF = `# Begin outputs.tf

output "build_validation" {
  value = module.base-vm.build_validation
}
`

const versionsTF = `# Begin versions.tf

provider "azurerm" {
  features {
    key_vault {
      purge_soft_delete_on_destroy    = true
      recover_soft_deleted_key_vaults = true
    }
  }
}

terraform {
  required_version = ">=1.5"

  required_providers {
    azurerm = {
      source  = "hashicorp/azurerm"
      version = "~>4.14"
    }
  }
}
`

const dataTF = `# Begin data.tf

data "azurerm_client_config" "current" {}

data "azurerm_subscription" "subscription" {
  subscription_id = data.azurerm_client_config.current.subscription_id
}

data "azuread_service_principal" "spn" {
  display_name = var.spn
}
`

const localsTF = `# Begin locals.tf

locals {
  common_tags = {
    for tag, value in var.common_tags : "wab:${tag}" => value
  }
}

locals {
  resource_specific_tags = {
    for tag, value in var.resource_specific_tags : "wab:${tag}" => value
  }
}
`

const resourceGroupTF = `# Begin r-rg.tf

resource "azurerm_resource_group" "rg" {
  name     = var.resource_group_name
  location = var.location

  tags = merge(
    tomap(
      { "wab:resource-name" = var.resource_group_name }
    ),
    local.common_tags, local.resource_specific_tags
  )
}
`

const asgTF = `# Begin r-asg.tf

resource "azurerm_application_security_group" "asg" {
  for_each            = var.application_security_groups
  name                = each.value.name
  location            = azurerm_resource_group.rg.location
  resource_group_name = azurerm_resource_group.rg.name
  tags = merge(
    tomap(
      { "wab:resource-name" = "${each.value.name}" }
    ),
    local.common_tags, local.resource_specific_tags
  )
}
`

const nsrTF = `# Begin r-nsr.tf

resource "azurerm_network_security_rule" "nsr" {
  for_each                    = { for i, rule in coalesce(var.network_security_rules.rules, []) : i => rule }
  resource_group_name         = var.network_security_rules.resource_group_name
  network_security_group_name = var.network_security_rules.network_security_group_name
  name                        = each.value.name
  priority                    = each.value.priority
  direction                   = each.value.direction
  access                      = each.value.access
  protocol                    = each.value.protocol
  description                 = each.value.description
  source_port_range           = each.value.source_port_range
  destination_port_ranges     = each.value.destination_port_ranges
}
`

const keyVaultTF = `# Begin r-kvlt.tf

resource "azurerm_key_vault" "kvlt" {
  name                          = var.key_vault.name
  location                      = azurerm_resource_group.rg.location
  resource_group_name           = azurerm_resource_group.rg.name
  tenant_id                     = data.azurerm_client_config.current.tenant_id
  public_network_access_enabled = var.key_vault.public_network_access
  soft_delete_retention_days    = var.key_vault.soft_delete_retention_days
  sku_name                      = var.key_vault.sku_name

  enable_rbac_authorization       = true
  enabled_for_deployment          = true
  enabled_for_disk_encryption     = true
  enabled_for_template_deployment = true
  purge_protection_enabled        = true

  tags = merge(
    tomap(
      { "wab:resource-name" = var.key_vault.name }
    ),
    local.common_tags, local.resource_specific_tags
  )
}
`

const validateScript = `#!/usr/bin/env bash
# Validate the generated deployment package.
set -euo pipefail

cd "$(dirname "$0")/.."

terraform fmt -check -recursive
terraform init -backend=false -input=false >/dev/null
terraform validate
`
